package email

import (
	"bytes"
	"html/template"
)

// TemplateManager holds the parsed email templates.
type TemplateManager struct {
	ContactTmpl    *template.Template
	ProContactTmpl *template.Template
}

// NewTemplateManager parses all email templates at startup.
func NewTemplateManager() (*TemplateManager, error) {
	contactTmpl, err := template.New("contact").Parse(contactTemplate)
	if err != nil {
		return nil, err
	}

	proContactTmpl, err := template.New("proContact").Parse(proContactTemplate)
	if err != nil {
		return nil, err
	}

	return &TemplateManager{
		ContactTmpl:    contactTmpl,
		ProContactTmpl: proContactTmpl,
	}, nil
}

// ContactData holds the dynamic data for the general contact template.
type ContactData struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ProContactData holds the dynamic data for the professional contact template.
type ProContactData struct {
	TypeLabel string
	FullName  string
	Company   string
	Phone     string
	Email     string
	City      string
	Message   string
}

// GenerateContactEmailHTML executes the contact template with the provided data.
func (tm *TemplateManager) GenerateContactEmailHTML(data ContactData) (string, error) {
	var body bytes.Buffer
	if err := tm.ContactTmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// GenerateProContactEmailHTML executes the professional contact template.
func (tm *TemplateManager) GenerateProContactEmailHTML(data ProContactData) (string, error) {
	var body bytes.Buffer
	if err := tm.ProContactTmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// --- HTML Template Definitions ---

const contactTemplate = `
<!DOCTYPE html>
<html>
<head>
	<title>Nouveau message de contact</title>
</head>
<body style="font-family: Arial, sans-serif;">
	<h2>Nouveau message de contact</h2>
	<p><strong>Nom :</strong> {{.Name}}</p>
	<p><strong>Email :</strong> {{.Email}}</p>
	{{if .Phone}}<p><strong>Téléphone :</strong> {{.Phone}}</p>{{end}}
	<p><strong>Sujet :</strong> {{.Subject}}</p>
	<hr>
	<p>{{.Message}}</p>
</body>
</html>
`

const proContactTemplate = `
<!DOCTYPE html>
<html>
<head>
	<title>Nouvelle demande professionnelle</title>
</head>
<body style="font-family: Arial, sans-serif;">
	<h2>Nouvelle demande professionnelle : {{.TypeLabel}}</h2>
	<p><strong>Nom complet :</strong> {{.FullName}}</p>
	<p><strong>Société :</strong> {{.Company}}</p>
	<p><strong>Téléphone :</strong> {{.Phone}}</p>
	<p><strong>Email :</strong> {{.Email}}</p>
	<p><strong>Ville :</strong> {{.City}}</p>
	{{if .Message}}<hr><p>{{.Message}}</p>{{end}}
</body>
</html>
`
