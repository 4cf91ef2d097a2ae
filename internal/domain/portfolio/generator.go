package portfolio

import (
	"fmt"
	"html/template"
	"strings"
)

const DefaultTheme = "faang"

// PageData is everything the portfolio templates can render. Empty fields
// are replaced with placeholders so a sparse profile still produces a
// presentable page.
type PageData struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Bio      string

	CurrentTitle   string
	CurrentCompany string

	Skills     []string
	Projects   []ProjectEntry
	Experience []ExperienceEntry
	Education  []EducationEntry

	GitHubURL   string
	LinkedInURL string
}

type ProjectEntry struct {
	Title       string
	Description string
	Skills      []string
	Link        string
}

type ExperienceEntry struct {
	Title       string
	Company     string
	Duration    string
	Description string
}

type EducationEntry struct {
	Degree      string
	Field       string
	Institution string
	Year        string
}

// Generator renders portfolio pages from parsed templates, one per theme.
type Generator struct {
	templates map[string]*template.Template
}

func NewGenerator() (*Generator, error) {
	g := &Generator{templates: make(map[string]*template.Template, len(themeSources))}
	for theme, src := range themeSources {
		t, err := template.New(theme).Funcs(template.FuncMap{"initial": initial}).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", theme, err)
		}
		g.templates[theme] = t
	}
	return g, nil
}

func (g *Generator) Themes() []string {
	return []string{"faang", "startup", "researcher", "minimal"}
}

// Render produces the page for the theme, falling back to the default theme
// when the requested one is unknown.
func (g *Generator) Render(theme string, data PageData) (string, string, error) {
	theme = strings.ToLower(strings.TrimSpace(theme))
	t, ok := g.templates[theme]
	if !ok {
		theme = DefaultTheme
		t = g.templates[theme]
	}

	applyDefaults(&data)

	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", "", fmt.Errorf("render %s portfolio: %w", theme, err)
	}
	return theme, b.String(), nil
}

func applyDefaults(d *PageData) {
	if d.Name == "" {
		d.Name = "Your Name"
	}
	if d.Email == "" {
		d.Email = "your@email.com"
	}
	if d.Phone == "" {
		d.Phone = "+1 (555) 000-0000"
	}
	if d.Location == "" {
		d.Location = "City, State"
	}
	if d.Bio == "" {
		d.Bio = "Software Developer"
	}
	if d.GitHubURL == "" {
		d.GitHubURL = "https://github.com"
	}
	if d.LinkedInURL == "" {
		d.LinkedInURL = "https://linkedin.com"
	}
}

func initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "U"
	}
	return strings.ToUpper(name[:1])
}

var themeSources = map[string]string{
	"faang": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} - Software Engineer</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 1000px; margin: 0 auto; padding: 40px 20px; }
        header { margin-bottom: 40px; border-bottom: 2px solid #000; padding-bottom: 20px; }
        h1 { font-size: 2.5em; margin-bottom: 10px; }
        .contact { display: flex; gap: 20px; font-size: 0.9em; }
        .section { margin-bottom: 40px; }
        h2 { font-size: 1.5em; margin: 30px 0 15px 0; border-bottom: 1px solid #ddd; padding-bottom: 10px; }
        .skill-tag { display: inline-block; background: #f0f0f0; padding: 5px 10px; margin: 5px 5px 5px 0; border-radius: 3px; font-size: 0.9em; }
        .project { margin-bottom: 25px; }
        .project-title { font-weight: bold; font-size: 1.1em; margin-bottom: 5px; }
        .project-skills { font-size: 0.9em; color: #666; margin: 5px 0; }
        a { color: #0066cc; text-decoration: none; }
        a:hover { text-decoration: underline; }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>{{.Name}}</h1>
            <p>{{.Bio}}</p>
            <div class="contact">
                <span>📧 {{.Email}}</span>
                <span>📱 {{.Phone}}</span>
                <span>📍 {{.Location}}</span>
                <span><a href="{{.GitHubURL}}">GitHub</a></span>
                <span><a href="{{.LinkedInURL}}">LinkedIn</a></span>
            </div>
        </header>
        {{if .Skills}}
        <section class="section">
            <h2>Technical Skills</h2>
            <div>
                {{range .Skills}}<span class="skill-tag">{{.}}</span>{{end}}
            </div>
        </section>
        {{end}}
        {{if .Projects}}
        <section class="section">
            <h2>Featured Projects</h2>
            {{range .Projects}}
            <div class="project">
                <div class="project-title">{{.Title}}</div>
                <p>{{.Description}}</p>
                <div class="project-skills">
                    {{range .Skills}}<span class="skill-tag">{{.}}</span>{{end}}
                </div>
                {{if .Link}}<p><a href="{{.Link}}">View Project →</a></p>{{end}}
            </div>
            {{end}}
        </section>
        {{end}}
        {{if .Experience}}
        <section class="section">
            <h2>Experience</h2>
            {{range .Experience}}
            <div style="margin-bottom: 20px;">
                <strong>{{.Title}}</strong> @ {{.Company}}
                <p style="font-size: 0.9em; color: #666;">{{.Duration}}</p>
                <p>{{.Description}}</p>
            </div>
            {{end}}
        </section>
        {{end}}
        {{if .Education}}
        <section class="section">
            <h2>Education</h2>
            {{range .Education}}
            <div style="margin-bottom: 15px;">
                <strong>{{.Degree}}</strong> in {{.Field}}
                <p style="font-size: 0.9em; color: #666;">{{.Institution}} • {{.Year}}</p>
            </div>
            {{end}}
        </section>
        {{end}}
    </div>
</body>
</html>`,

	"startup": `<!doctype html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width,initial-scale=1">
    <title>{{.Name}} — Startup Portfolio</title>
    <style>
        :root{--accent:#ff6b6b;--muted:#f7fafc}
        body{font-family:Inter,system-ui,Arial,sans-serif;background:linear-gradient(120deg,#0f172a 0%, #08112a 60%);color:#eef2ff}
        .frame{max-width:1100px;margin:40px auto;padding:28px}
        header{display:flex;align-items:center;gap:24px}
        .avatar{width:96px;height:96px;background:rgba(255,255,255,0.06);border-radius:14px;display:flex;align-items:center;justify-content:center;font-weight:700}
        h1{font-size:2.1rem;margin:0}
        .meta{color:rgba(255,255,255,0.8)}
        .grid{display:grid;grid-template-columns:1fr 380px;gap:26px;margin-top:28px}
        .card{background:linear-gradient(180deg,rgba(255,255,255,0.03),transparent);padding:22px;border-radius:12px}
        .skills{display:flex;flex-wrap:wrap;gap:8px}
        .pill{background:rgba(255,255,255,0.06);padding:6px 10px;border-radius:999px;font-size:0.9rem}
        .projects .proj{padding:14px;border-radius:10px;background:rgba(0,0,0,0.18);margin-bottom:12px}
        a.button{display:inline-block;padding:8px 12px;border-radius:8px;background:var(--accent);color:#fff;text-decoration:none}
        .sidebar .contact a{color:#fff}
    </style>
</head>
<body>
    <div class="frame">
        <header>
            <div class="avatar">{{initial .Name}}</div>
            <div>
                <h1>{{.Name}}</h1>
                <div class="meta">{{.Bio}}</div>
                <div style="margin-top:8px"><a class="button" href="mailto:{{.Email}}">Contact</a></div>
            </div>
        </header>

        <div class="grid">
            <div>
                <div class="card">
                    <h2>About</h2>
                    <p style="color:#dbeafe">{{.Bio}}</p>
                </div>

                <div class="card projects" style="margin-top:16px">
                    <h2>Projects</h2>
                    {{range .Projects}}
                    <div class="proj">
                        <strong>{{.Title}}</strong>
                        <p style="color:#c7d2fe">{{.Description}}</p>
                        {{if .Link}}<a href="{{.Link}}" style="color:#fff;">View</a>{{end}}
                    </div>
                    {{end}}
                </div>
            </div>

            <aside class="sidebar">
                <div class="card contact">
                    <h3>Contact</h3>
                    <div><a href="mailto:{{.Email}}">{{.Email}}</a></div>
                    <div>{{.Phone}}</div>
                    <div><a href="{{.LinkedInURL}}">LinkedIn</a></div>
                    <div><a href="{{.GitHubURL}}">GitHub</a></div>
                </div>

                <div class="card" style="margin-top:16px">
                    <h3>Skills</h3>
                    <div class="skills">
                        {{range .Skills}}<span class="pill">{{.}}</span>{{end}}
                    </div>
                </div>
            </aside>
        </div>
    </div>
</body>
</html>`,

	"researcher": `<!doctype html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>{{.Name}} — Research Portfolio</title>
    <meta name="viewport" content="width=device-width,initial-scale=1">
    <style>
        body{font-family: 'Merriweather', serif;max-width:900px;margin:40px auto;padding:28px;color:#111;background:#fff}
        header{border-bottom:2px solid #e6eef8;padding-bottom:14px}
        h1{font-size:2rem;margin:0}
        .affil{color:#51628f}
        .pub{margin:18px 0;padding-left:12px;border-left:3px solid #c7d2fe}
        .meta{color:#525252;font-size:0.95rem}
        .grid{display:flex;gap:20px}
        .left{flex:2}
        .right{flex:1;background:#f7fbff;padding:18px;border-radius:8px}
    </style>
</head>
<body>
    <header>
        <h1>{{.Name}}</h1>
        <div class="affil">{{.CurrentTitle}}{{if .CurrentCompany}} — {{.CurrentCompany}}{{end}}</div>
        <p class="meta">{{.Bio}}</p>
    </header>

    <div style="margin-top:22px" class="grid">
        <div class="left">
            <section>
                <h2>Selected Publications &amp; Research</h2>
                {{range .Projects}}
                <article class="pub">
                    <h3>{{.Title}}</h3>
                    <p>{{.Description}}</p>
                    {{if .Link}}<div><a href="{{.Link}}">Read more</a></div>{{end}}
                </article>
                {{end}}
            </section>

            <section style="margin-top:18px">
                <h2>Experience</h2>
                {{range .Experience}}
                <div style="margin-bottom:12px">
                    <strong>{{.Title}}</strong> — <em>{{.Company}}</em>
                    <div style="color:#555">{{.Description}}</div>
                </div>
                {{end}}
            </section>
        </div>

        <aside class="right">
            <h3>Contact &amp; Links</h3>
            <div><a href="mailto:{{.Email}}">{{.Email}}</a></div>
            <div>{{.Phone}}</div>
            <div><a href="{{.LinkedInURL}}">LinkedIn</a></div>
            <div style="margin-top:12px"><strong>Skills</strong>
                <div style="margin-top:8px">{{range .Skills}}<div style="font-size:0.92rem">• {{.}}</div>{{end}}</div>
            </div>
        </aside>
    </div>
</body>
</html>`,

	"minimal": `<!doctype html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width,initial-scale=1">
    <title>{{.Name}}</title>
    <style>
        body{font-family:Arial,Helvetica,sans-serif;color:#111;background:#fff}
        .wrap{max-width:820px;margin:40px auto;padding:30px}
        .left{float:left;width:30%;padding-right:20px;border-right:1px solid #eee}
        .right{margin-left:32%}
        h1{margin:0 0 6px 0}
        .small{color:#666;font-size:0.95rem}
        ul{padding-left:18px}
    </style>
</head>
<body>
    <div class="wrap">
        <div class="left">
            <h1>{{.Name}}</h1>
            <div class="small">{{.CurrentTitle}}<br>{{.CurrentCompany}}</div>
            <hr style="margin:12px 0">
            <div class="small">Contact:<br><a href="mailto:{{.Email}}">{{.Email}}</a><br>{{.Phone}}</div>
            <h3 style="margin-top:18px">Skills</h3>
            <ul>{{range .Skills}}<li>{{.}}</li>{{end}}</ul>
        </div>

        <div class="right">
            <section>
                <h2>About</h2>
                <p>{{.Bio}}</p>
            </section>

            <section>
                <h2>Experience</h2>
                {{range .Experience}}
                <div style="margin-bottom:12px"><strong>{{.Title}}</strong><div class="small">{{.Company}} • {{.Duration}}</div><p>{{.Description}}</p></div>
                {{end}}
            </section>

            <section>
                <h2>Projects</h2>
                {{range .Projects}}
                <div style="margin-bottom:10px"><strong>{{.Title}}</strong> — {{.Description}}</div>
                {{end}}
            </section>
        </div>
        <div style="clear:both"></div>
    </div>
</body>
</html>`,
}
