package report

// ReportTemplate is the standalone HTML report template
const ReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Website Audit | {{.Result.URL}}</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <style>
        .grade-a { color: #10b981; }
        .grade-b { color: #84cc16; }
        .grade-c { color: #f59e0b; }
        .grade-d { color: #f97316; }
        .grade-f { color: #ef4444; }
        .answer-yes { color: #10b981; }
        .answer-no { color: #ef4444; }
        .answer-needs_work { color: #f59e0b; }
    </style>
</head>
<body class="bg-gray-50 min-h-screen">
    <header class="bg-white shadow-sm border-b sticky top-0 z-50">
        <div class="max-w-5xl mx-auto px-4 py-4 flex justify-between items-center">
            <div>
                <h1 class="text-xl font-bold text-gray-900">Website Audit Report</h1>
                <p class="text-sm text-gray-500">{{.Result.URL}} &bull; {{.Result.Timestamp}}</p>
            </div>
            <button onclick="window.print()" class="px-4 py-2 bg-gray-100 hover:bg-gray-200 rounded-lg text-sm">
                Print / PDF
            </button>
        </div>
    </header>

    <main class="max-w-5xl mx-auto px-4 py-6 space-y-6">
        <!-- Grade Banner -->
        <div class="bg-white border-l-4 rounded-xl shadow p-6 flex items-center justify-between">
            <div>
                <h2 class="text-2xl font-bold text-gray-900">Overall Grade</h2>
                <p class="text-gray-600 mt-1">Weighted across conversion and experience checks</p>
            </div>
            <p class="text-6xl font-bold {{.GradeClass}}">{{.Result.Grade}}</p>
        </div>

        <!-- Score Cards -->
        <div class="grid grid-cols-1 md:grid-cols-2 gap-4">
            <div class="bg-white rounded-xl shadow p-5">
                <p class="text-sm text-gray-500">Conversion (CRO)</p>
                <p class="text-3xl font-bold text-gray-900">{{.Result.CROScore}} / {{.MaxCRO}}</p>
                <div class="mt-2 h-2 bg-gray-100 rounded-full">
                    <div class="h-2 bg-blue-500 rounded-full" style="width: {{printf "%.0f" (percent .Result.CROScore .MaxCRO)}}%"></div>
                </div>
            </div>
            <div class="bg-white rounded-xl shadow p-5">
                <p class="text-sm text-gray-500">User Experience (UX)</p>
                <p class="text-3xl font-bold text-gray-900">{{.Result.UXScore}} / {{.MaxUX}}</p>
                <div class="mt-2 h-2 bg-gray-100 rounded-full">
                    <div class="h-2 bg-purple-500 rounded-full" style="width: {{printf "%.0f" (percent .Result.UXScore .MaxUX)}}%"></div>
                </div>
            </div>
        </div>

        <!-- Recommendations -->
        {{if .Result.Recommendations}}
        <div class="bg-white rounded-xl shadow p-6">
            <h3 class="text-lg font-semibold text-gray-900 mb-4">Top Recommendations</h3>
            <ol class="space-y-3">
                {{range .Result.Recommendations}}
                <li class="border-l-4 {{if eq .Impact "High"}}border-red-400{{else}}border-yellow-400{{end}} pl-4 py-1">
                    <p class="font-medium text-gray-900">{{.Title}}</p>
                    <p class="text-sm text-gray-600">{{.Detail}}</p>
                    <p class="text-xs text-gray-400 mt-1">Impact: {{.Impact}} &bull; Effort: {{.Effort}}</p>
                </li>
                {{end}}
            </ol>
        </div>
        {{end}}

        <!-- Category Detail -->
        <div class="bg-white rounded-xl shadow p-6">
            <h3 class="text-lg font-semibold text-gray-900 mb-4">Conversion Checks</h3>
            {{range .Result.CROResults}}
            <div class="mb-5">
                <div class="flex justify-between items-center mb-2">
                    <h4 class="font-medium text-gray-800">{{.Category}}</h4>
                    <span class="text-sm text-gray-500">{{.Score}}%</span>
                </div>
                <table class="w-full text-sm">
                    <tbody>
                        {{range .Questions}}
                        <tr class="border-t">
                            <td class="py-2 pr-4 text-gray-700">{{.Question}}</td>
                            <td class="py-2 font-medium answer-{{lower (printf "%s" .Answer)}} whitespace-nowrap">{{answerLabel .Answer}}</td>
                        </tr>
                        {{end}}
                    </tbody>
                </table>
            </div>
            {{end}}
        </div>

        <div class="bg-white rounded-xl shadow p-6">
            <h3 class="text-lg font-semibold text-gray-900 mb-4">Experience Checks</h3>
            {{range .Result.UXResults}}
            <div class="mb-5">
                <div class="flex justify-between items-center mb-2">
                    <h4 class="font-medium text-gray-800">{{.Category}}</h4>
                    <span class="text-sm text-gray-500">{{.Score}}%</span>
                </div>
                <table class="w-full text-sm">
                    <tbody>
                        {{range .Questions}}
                        <tr class="border-t">
                            <td class="py-2 pr-4 text-gray-700">{{.Question}}</td>
                            <td class="py-2 font-medium answer-{{lower (printf "%s" .Answer)}} whitespace-nowrap">{{answerLabel .Answer}}</td>
                        </tr>
                        {{end}}
                    </tbody>
                </table>
            </div>
            {{end}}
        </div>

        <footer class="text-center text-xs text-gray-400 py-6">
            Generated by siteaudit &bull; {{.Result.Timestamp}}
        </footer>
    </main>
</body>
</html>`
