package render

import "html/template"

var reportTemplate = template.Must(template.New("report").Parse(reportHTML))

const reportHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Time Tracking Report</title>
    <style>
      * { box-sizing: border-box; margin: 0; padding: 0; }
      body {
        font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif;
        line-height: 1.6;
        color: #333;
        background-color: #fff;
        -webkit-print-color-adjust: exact;
        print-color-adjust: exact;
      }
      .container { max-width: 1000px; margin: 0 auto; padding: 40px 20px; }
      .header-top {
        display: flex;
        justify-content: space-between;
        align-items: center;
        margin-bottom: 20px;
        padding-bottom: 20px;
        border-bottom: 3px solid #f3f4f6;
      }
      .logo { font-size: 28px; font-weight: 700; color: #4f46e5; }
      .report-title { font-size: 36px; font-weight: 800; color: #111827; margin: 20px 0 15px 0; }
      .date-generated { font-size: 14px; color: #6b7280; }
      .date-range {
        display: inline-block;
        font-size: 15px;
        font-weight: 600;
        color: #4f46e5;
        margin: 15px 0;
        padding: 8px 16px;
        background-color: #eef2ff;
        border-radius: 30px;
      }
      .summary-card {
        background: linear-gradient(135deg, #4f46e5, #6366f1);
        color: white;
        padding: 25px;
        border-radius: 16px;
        max-width: 300px;
        margin-bottom: 40px;
      }
      .summary-title { font-size: 16px; font-weight: 500; text-transform: uppercase; letter-spacing: 1px; }
      .summary-total { font-size: 36px; font-weight: 700; margin-top: 10px; }
      .chart-container {
        display: flex;
        margin-bottom: 40px;
        border-radius: 16px;
        padding: 25px;
        border: 1px solid #f3f4f6;
      }
      .pie-chart { width: 200px; height: 200px; border-radius: 50%; {{.Gradient}} }
      .chart-legend { flex: 1; margin-left: 30px; }
      .legend-title { font-size: 18px; font-weight: 600; margin-bottom: 15px; color: #111827; }
      .legend-item { display: flex; align-items: center; margin-bottom: 10px; }
      .legend-color { width: 16px; height: 16px; border-radius: 4px; margin-right: 10px; }
      .legend-label { font-size: 14px; color: #4b5563; }
      .legend-value { margin-left: auto; font-weight: 600; color: #111827; }
      .customer-section {
        margin-bottom: 40px;
        border-radius: 16px;
        padding: 30px;
        border: 1px solid #f3f4f6;
      }
      .customer-header {
        display: flex;
        justify-content: space-between;
        align-items: center;
        margin-bottom: 25px;
        padding-bottom: 15px;
        border-bottom: 2px solid #f3f4f6;
      }
      .customer-name { font-size: 24px; font-weight: 700; color: #111827; }
      .customer-swatch { display: inline-block; width: 12px; height: 12px; margin-right: 8px; border-radius: 2px; }
      .customer-total {
        font-size: 18px;
        font-weight: 600;
        color: #4f46e5;
        background-color: #eef2ff;
        padding: 8px 16px;
        border-radius: 12px;
      }
      .description-section {
        margin-bottom: 25px;
        background-color: #f9fafb;
        border-radius: 12px;
        padding: 20px;
        border: 1px solid #f3f4f6;
      }
      .description-header {
        display: flex;
        justify-content: space-between;
        align-items: center;
        margin-bottom: 15px;
        padding-bottom: 12px;
        border-bottom: 1px solid #e5e7eb;
      }
      .description-title { font-size: 18px; font-weight: 600; color: #374151; }
      .description-total {
        font-size: 16px;
        font-weight: 600;
        color: #059669;
        background-color: #ecfdf5;
        padding: 6px 12px;
        border-radius: 8px;
      }
      table { width: 100%; border-collapse: collapse; margin-top: 10px; font-size: 14px; }
      th {
        background-color: #f3f4f6;
        text-align: left;
        padding: 12px 15px;
        font-weight: 600;
        color: #4b5563;
        border-bottom: 1px solid #e5e7eb;
      }
      td { padding: 12px 15px; border-bottom: 1px solid #e5e7eb; color: #4b5563; }
      .time-cell { font-weight: 500; color: #4f46e5; }
      .type-cell {
        display: inline-block;
        padding: 4px 10px;
        border-radius: 20px;
        font-size: 12px;
        font-weight: 500;
      }
      .type-manual { background-color: #eef2ff; color: #4f46e5; }
      .type-automatic { background-color: #f0fdf4; color: #059669; }
      .empty-message {
        text-align: center;
        padding: 60px 20px;
        font-size: 18px;
        color: #6b7280;
        font-style: italic;
      }
      .total-summary {
        margin-top: 50px;
        background-color: #f0fdf4;
        border-radius: 16px;
        padding: 30px;
        text-align: center;
        border: 1px solid #d1fae5;
      }
      .total-summary-title { font-size: 20px; font-weight: 600; color: #059669; margin-bottom: 15px; }
      .total-summary-value { font-size: 36px; font-weight: 700; color: #059669; }
      .footer {
        margin-top: 60px;
        text-align: center;
        color: #6b7280;
        font-size: 12px;
        padding-top: 20px;
        border-top: 1px solid #e5e7eb;
      }
      .page-break { page-break-after: always; }
      @media print {
        body { font-size: 12pt; }
        .container { padding: 0; max-width: 100%; }
        .customer-section, .description-section { page-break-inside: avoid; }
      }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <div class="header-top">
          <div class="header-left">
            <div class="logo">{{.Logo}}</div>
            <div class="date-range">{{.DateRangeLabel}}</div>
          </div>
          <div class="header-right">
            <div class="date-generated">Generated: {{.GeneratedDate}} at {{.GeneratedTime}}</div>
          </div>
        </div>
        <h1 class="report-title">Time Tracking Report</h1>
      </div>
{{- if .Empty}}
      <div class="empty-message">No entries selected.</div>
{{- else}}
      <div class="summary-card">
        <div class="summary-title">Total Hours</div>
        <div class="summary-total">{{.Total}}</div>
      </div>
{{- if .Legend}}
      <div class="chart-container">
        <div class="pie-chart"></div>
        <div class="chart-legend">
          <h3 class="legend-title">Time Distribution by Customer</h3>
{{- range .Legend}}
          <div class="legend-item">
            <div class="legend-color" style="background-color: {{.Color}}"></div>
            <div class="legend-label">{{.Name}}</div>
            <div class="legend-value">{{.Value}}</div>
          </div>
{{- end}}
        </div>
      </div>
{{- end}}
{{- range .Sections}}
      <div class="customer-section">
        <div class="customer-header">
          <div class="customer-name">
            <span class="customer-swatch" style="background-color: {{.Color}}"></span>{{.Name}}
          </div>
          <div class="customer-total">Total: {{.Total}}</div>
        </div>
{{- range .Descriptions}}
        <div class="description-section">
          <div class="description-header">
            <div class="description-title">{{.Title}}</div>
            <div class="description-total">Total: {{.Total}}</div>
          </div>
          <table>
            <thead>
              <tr>
                <th>Date</th>
                <th>Start Time</th>
                <th>Duration</th>
                <th>Type</th>
              </tr>
            </thead>
            <tbody>
{{- range .Rows}}
              <tr>
                <td>{{.Date}}</td>
                <td>{{.StartTime}}</td>
                <td class="time-cell">{{.Duration}}</td>
                <td><span class="type-cell {{.TypeClass}}">{{.TypeLabel}}</span></td>
              </tr>
{{- end}}
            </tbody>
          </table>
        </div>
{{- end}}
      </div>
{{- if .PageBreak}}
      <div class="page-break"></div>
{{- end}}
{{- end}}
      <div class="total-summary">
        <div class="total-summary-title">Total Time Tracked</div>
        <div class="total-summary-value">{{.Total}}</div>
      </div>
{{- end}}
      <div class="footer">
        <p>This report was generated by {{.Logo}}. All times are displayed in hours and minutes.</p>
        <p>&copy; {{.Year}} {{.Logo}}</p>
      </div>
    </div>
  </body>
</html>
`
