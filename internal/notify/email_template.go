package notify

const emailHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Heading}}</title>
  <style>
    body {
      margin: 0;
      padding: 24px;
      background-color: #f3f4f6;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      color: #111827;
      line-height: 1.5;
    }

    .container {
      max-width: 640px;
      margin: 0 auto;
      background: #ffffff;
      border-radius: 8px;
      border: 1px solid #e5e7eb;
      overflow: hidden;
    }

    .header {
      padding: 20px 24px;
      background: #b31b1b;
      color: #ffffff;
    }

    .article-id {
      font-size: 13px;
      letter-spacing: 0.05em;
      opacity: 0.85;
    }

    .title {
      font-size: 20px;
      font-weight: 700;
      margin-top: 4px;
    }

    .section {
      padding: 16px 24px;
      border-top: 1px solid #f3f4f6;
      font-size: 14px;
    }

    .section-title {
      font-size: 11px;
      font-weight: 700;
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.1em;
      margin-bottom: 12px;
    }

    .summary-list {
      margin: 0 0 12px 0;
      padding-left: 20px;
    }

    .summary-list li {
      margin-bottom: 8px;
    }

    .cta-button {
      display: inline-block;
      margin-top: 12px;
      padding: 10px 20px;
      font-size: 14px;
      font-weight: 600;
      color: #ffffff !important;
      background: #b31b1b;
      border-radius: 6px;
      text-decoration: none;
    }

    .footer {
      padding: 16px 24px;
      font-size: 12px;
      color: #9ca3af;
      text-align: center;
      background: #f9fafb;
      border-top: 1px solid #f3f4f6;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="article-id">arXiv:{{.Summary.Article.ID}}</div>
      {{if .Summary.Article.Title}}<div class="title">{{.Summary.Article.Title}}</div>{{end}}
    </div>

    <div class="section">
      <div class="section-title">AI Summary</div>
      {{range .Blocks}}
        {{if .Bullets}}
        <ul class="summary-list">
          {{range .Bullets}}<li>{{.}}</li>
          {{end}}
        </ul>
        {{else}}
        <p>{{.Paragraph}}</p>
        {{end}}
      {{end}}
      <a href="{{.Summary.Article.URL}}" class="cta-button" target="_blank" rel="noopener">
        Read the article →
      </a>
    </div>

    <div class="footer">
      Summarized by {{.Summary.Model}} via papersum
    </div>
  </div>
</body>
</html>`
