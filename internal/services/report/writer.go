// Package report renders completed analyses as JSON or a standalone HTML
// page suitable for sharing.
package report

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/siteaudit/siteaudit/internal/domain"
)

// Writer renders analysis results
type Writer struct {
	templates *template.Template
	logger    *zap.Logger
}

// NewWriter creates a report writer
func NewWriter(logger *zap.Logger) (*Writer, error) {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"lower": strings.ToLower,
		"percent": func(score, max int) float64 {
			if max == 0 {
				return 0
			}
			return float64(score) / float64(max) * 100
		},
		"answerLabel": func(a domain.Answer) string {
			switch a {
			case domain.AnswerYes:
				return "Yes"
			case domain.AnswerNo:
				return "No"
			default:
				return "Needs work"
			}
		},
	}).Parse(ReportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	return &Writer{
		templates: tmpl,
		logger:    logger,
	}, nil
}

// WriteJSON writes the result as indented JSON
func (w *Writer) WriteJSON(out io.Writer, result *domain.AnalysisResult) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// WriteHTML renders the result as a standalone HTML page
func (w *Writer) WriteHTML(out io.Writer, result *domain.AnalysisResult) error {
	data := reportData{
		Result:     result,
		MaxCRO:     domain.MaxCROScore,
		MaxUX:      domain.MaxUXScore,
		GradeClass: gradeClass(result.Grade),
	}
	return w.templates.Execute(out, data)
}

type reportData struct {
	Result     *domain.AnalysisResult
	MaxCRO     int
	MaxUX      int
	GradeClass string
}

func gradeClass(grade string) string {
	switch grade {
	case "A":
		return "grade-a"
	case "B":
		return "grade-b"
	case "C":
		return "grade-c"
	case "D":
		return "grade-d"
	default:
		return "grade-f"
	}
}
