package handlers

import (
	"html/template"
	"log"
	"net/http"
)

// DocHandler serves the privacy policy and terms pages linked from the
// bot's Discord application profile.
type DocHandler struct {
	botName      string
	contactEmail string
}

func NewDocHandler(botName, contactEmail string) *DocHandler {
	return &DocHandler{botName: botName, contactEmail: contactEmail}
}

type docPage struct {
	BotName      string
	ContactEmail string
	Updated      string
}

const docLayout = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>{{template "title" .}} - {{.BotName}}</title>
	<style>
		body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; background-color: #f9f9f9; }
		.container { background-color: #fff; padding: 40px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
		h1 { color: #2c3e50; border-bottom: 2px solid #eee; padding-bottom: 10px; }
		h2 { color: #34495e; margin-top: 30px; }
		.date { color: #7f8c8d; font-style: italic; margin-bottom: 20px; }
		.contact { background-color: #e8f4f8; padding: 15px; border-radius: 5px; margin-top: 30px; }
	</style>
</head>
<body>
	<div class="container">
		<h1>{{template "title" .}}</h1>
		<div class="date">Last updated: {{.Updated}}</div>
		{{template "body" .}}
		{{if .ContactEmail}}<div class="contact">Questions? Contact <a href="mailto:{{.ContactEmail}}">{{.ContactEmail}}</a>.</div>{{end}}
	</div>
</body>
</html>`

const privacyBody = `{{define "title"}}Privacy Policy{{end}}
{{define "body"}}
<p>{{.BotName}} is a Discord bot that tracks daily LeetCode practice for a small group.</p>
<h2>1. Information We Store</h2>
<ul>
	<li>Your Discord user id and username, as sent by Discord with each command</li>
	<li>The LeetCode question ids you submit with <code>/complete</code></li>
	<li>The date of your latest completion and your current streak</li>
	<li>A short history of days on which the whole group completed a question</li>
</ul>
<h2>2. How It Is Used</h2>
<p>The data is only used to answer the bot's slash commands. It is not sold or shared.</p>
<h2>3. Retention</h2>
<p>Records are kept for as long as the bot runs. Ask the operator to remove your record at any time.</p>
{{end}}`

const termsBody = `{{define "title"}}Terms of Service{{end}}
{{define "body"}}
<p>By adding {{.BotName}} to a server or using its commands you agree to these terms.</p>
<h2>1. Use</h2>
<p>The bot is provided as is, for tracking personal practice. Do not abuse its commands or try to disrupt the service.</p>
<h2>2. Availability</h2>
<p>The service may change or stop at any time without notice. Streak data may be lost.</p>
<h2>3. Discord</h2>
<p>Your use of the bot is also subject to Discord's own Terms of Service.</p>
{{end}}`

const docsUpdated = "December 14, 2025"

var (
	privacyTemplate = template.Must(template.Must(template.New("privacy").Parse(docLayout)).Parse(privacyBody))
	termsTemplate   = template.Must(template.Must(template.New("terms").Parse(docLayout)).Parse(termsBody))
)

func (h *DocHandler) ServePrivacyPolicy(w http.ResponseWriter, r *http.Request) {
	h.render(w, privacyTemplate)
}

func (h *DocHandler) ServeTermsOfService(w http.ResponseWriter, r *http.Request) {
	h.render(w, termsTemplate)
}

func (h *DocHandler) render(w http.ResponseWriter, tmpl *template.Template) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := tmpl.Execute(w, docPage{
		BotName:      h.botName,
		ContactEmail: h.contactEmail,
		Updated:      docsUpdated,
	})
	if err != nil {
		log.Printf("render: executing %s template: %v", tmpl.Name(), err)
		http.Error(w, "Could not load document", http.StatusInternalServerError)
	}
}
