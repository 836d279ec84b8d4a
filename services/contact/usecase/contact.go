package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gazelia/storefront/internal/pkg/email"
	"github.com/gazelia/storefront/internal/pkg/logger"
	"github.com/gazelia/storefront/internal/pkg/models"
	"github.com/gazelia/storefront/services/contact"
)

// ErrValidation marks a submission rejected before any relay attempt
var ErrValidation = errors.New("validation failed")

// ContactUC implements the form submission relays: validate, persist the
// lead, then forward the submission by email with the submitter on Reply-To.
type ContactUC struct {
	cfg       models.EmailConfig
	repo      contact.LeadRepo
	sender    email.Sender
	templates *email.TemplateManager
	validate  *validator.Validate
}

// NewContactUC creates the contact usecase
func NewContactUC(
	cfg models.EmailConfig,
	repo contact.LeadRepo,
	sender email.Sender,
	templates *email.TemplateManager,
) *ContactUC {
	return &ContactUC{
		cfg:       cfg,
		repo:      repo,
		sender:    sender,
		templates: templates,
		validate:  newValidator(),
	}
}

// newValidator reports fields under their json names so validation
// messages match the payload the client sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// ValidationMessage names the fields that failed validation so the
// error body tells the caller what to fix.
func ValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "missing or invalid fields"
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "email":
			parts = append(parts, fe.Field()+" must be a valid email address")
		default:
			parts = append(parts, fe.Field()+" is invalid")
		}
	}
	return strings.Join(parts, ", ")
}

// SubmitContact relays a general contact form submission
func (uc *ContactUC) SubmitContact(ctx context.Context, req *models.ContactRequest) error {
	if err := uc.validate.Struct(req); err != nil {
		return validationError(err)
	}

	uc.persistLead(ctx, &models.Lead{
		Kind:    "contact",
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})

	html, err := uc.templates.GenerateContactEmailHTML(email.ContactData{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return fmt.Errorf("failed to render contact email: %w", err)
	}

	subject := fmt.Sprintf("Contact : %s", req.Subject)
	plain := fmt.Sprintf("De : %s <%s>\n\n%s", req.Name, req.Email, req.Message)

	if err := uc.sender.SendEmail(ctx, uc.cfg.ContactRecipient, req.Email, subject, plain, html); err != nil {
		return fmt.Errorf("failed to relay contact form: %w", err)
	}
	return nil
}

// SubmitProContact relays a professional contact form submission
func (uc *ContactUC) SubmitProContact(ctx context.Context, req *models.ProContactRequest) error {
	if err := uc.validate.Struct(req); err != nil {
		return validationError(err)
	}

	uc.persistLead(ctx, &models.Lead{
		Kind:    "contact_pro",
		Type:    req.Type,
		Name:    req.FullName,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		City:    req.City,
		Message: req.Message,
	})

	label := proTypeLabel(req.Type)
	html, err := uc.templates.GenerateProContactEmailHTML(email.ProContactData{
		TypeLabel: label,
		FullName:  req.FullName,
		Company:   req.Company,
		Phone:     req.Phone,
		Email:     req.Email,
		City:      req.City,
		Message:   req.Message,
	})
	if err != nil {
		return fmt.Errorf("failed to render professional contact email: %w", err)
	}

	subject := fmt.Sprintf("Demande professionnelle : %s (%s)", req.Company, label)
	plain := fmt.Sprintf("%s\n%s (%s)\n%s\n%s\n\n%s", label, req.FullName, req.Company, req.Phone, req.City, req.Message)

	if err := uc.sender.SendEmail(ctx, uc.cfg.ProRecipient, req.Email, subject, plain, html); err != nil {
		return fmt.Errorf("failed to relay professional contact form: %w", err)
	}
	return nil
}

// persistLead stores the submission for follow-up. The relay still goes out
// when the insert fails, so a database incident never loses the email.
func (uc *ContactUC) persistLead(ctx context.Context, lead *models.Lead) {
	if err := uc.repo.CreateLead(ctx, lead); err != nil {
		logger.Warn("Failed to persist lead",
			logger.String("kind", lead.Kind),
			logger.Err(err))
	}
}

func proTypeLabel(t string) string {
	if t == models.ProContactReseller {
		return "Revendeur"
	}
	return "Client professionnel"
}
