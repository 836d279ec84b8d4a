package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazelia/storefront/internal/pkg/email"
	"github.com/gazelia/storefront/internal/pkg/models"
)

type fakeLeadRepo struct {
	leads []*models.Lead
	err   error
}

func (r *fakeLeadRepo) CreateLead(_ context.Context, lead *models.Lead) error {
	if r.err != nil {
		return r.err
	}
	r.leads = append(r.leads, lead)
	return nil
}

type sentEmail struct {
	to, replyTo, subject, plain, html string
}

type fakeSender struct {
	sent []sentEmail
	err  error
}

func (s *fakeSender) SendEmail(_ context.Context, to, replyTo, subject, plain, html string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentEmail{to, replyTo, subject, plain, html})
	return nil
}

func newTestUC(t *testing.T, repo *fakeLeadRepo, sender *fakeSender) *ContactUC {
	t.Helper()
	templates, err := email.NewTemplateManager()
	require.NoError(t, err)

	cfg := models.EmailConfig{
		FromAddress:      "noreply@gazelia.ma",
		ContactRecipient: "contact@gazelia.ma",
		ProRecipient:     "commercial@gazelia.ma",
	}
	return NewContactUC(cfg, repo, sender, templates)
}

func validContact() *models.ContactRequest {
	return &models.ContactRequest{
		Name:    "Amine B.",
		Email:   "amine@example.com",
		Phone:   "+212600000000",
		Subject: "Livraison",
		Message: "Bonjour, livrez-vous le dimanche ?",
	}
}

func validProContact() *models.ProContactRequest {
	return &models.ProContactRequest{
		Type:     models.ProContactReseller,
		FullName: "Sara K.",
		Company:  "Epicerie du Port",
		Phone:    "+212600000001",
		Email:    "sara@example.com",
		City:     "Agadir",
	}
}

func TestSubmitContact_Success(t *testing.T) {
	repo := &fakeLeadRepo{}
	sender := &fakeSender{}
	uc := newTestUC(t, repo, sender)

	err := uc.SubmitContact(context.Background(), validContact())

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "contact@gazelia.ma", sender.sent[0].to)
	assert.Equal(t, "amine@example.com", sender.sent[0].replyTo)
	assert.Contains(t, sender.sent[0].subject, "Livraison")
	assert.Contains(t, sender.sent[0].html, "Amine B.")

	require.Len(t, repo.leads, 1)
	assert.Equal(t, "contact", repo.leads[0].Kind)
}

func TestSubmitContact_MissingFields(t *testing.T) {
	sender := &fakeSender{}
	uc := newTestUC(t, &fakeLeadRepo{}, sender)

	req := validContact()
	req.Email = ""

	err := uc.SubmitContact(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, sender.sent)
}

func TestSubmitContact_RelayFailure(t *testing.T) {
	uc := newTestUC(t, &fakeLeadRepo{}, &fakeSender{err: errors.New("ses unavailable")})

	err := uc.SubmitContact(context.Background(), validContact())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestSubmitContact_LeadFailureStillRelays(t *testing.T) {
	sender := &fakeSender{}
	uc := newTestUC(t, &fakeLeadRepo{err: errors.New("db down")}, sender)

	err := uc.SubmitContact(context.Background(), validContact())

	require.NoError(t, err)
	assert.Len(t, sender.sent, 1)
}

func TestSubmitProContact_Success(t *testing.T) {
	repo := &fakeLeadRepo{}
	sender := &fakeSender{}
	uc := newTestUC(t, repo, sender)

	err := uc.SubmitProContact(context.Background(), validProContact())

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "commercial@gazelia.ma", sender.sent[0].to)
	assert.Equal(t, "sara@example.com", sender.sent[0].replyTo)
	assert.Contains(t, sender.sent[0].html, "Revendeur")
	assert.Contains(t, sender.sent[0].html, "Epicerie du Port")

	require.Len(t, repo.leads, 1)
	assert.Equal(t, "contact_pro", repo.leads[0].Kind)
	assert.Equal(t, models.ProContactReseller, repo.leads[0].Type)
}

func TestSubmitProContact_MissingCityNamesField(t *testing.T) {
	sender := &fakeSender{}
	uc := newTestUC(t, &fakeLeadRepo{}, sender)

	req := validProContact()
	req.City = ""

	err := uc.SubmitProContact(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, ValidationMessage(err), "city is required")
	assert.Empty(t, sender.sent)
}

func TestValidationMessage_Fallback(t *testing.T) {
	assert.Equal(t, "missing or invalid fields", ValidationMessage(errors.New("broken pipe")))
}

func TestSubmitProContact_InvalidType(t *testing.T) {
	sender := &fakeSender{}
	uc := newTestUC(t, &fakeLeadRepo{}, sender)

	req := validProContact()
	req.Type = "particulier"

	err := uc.SubmitProContact(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, ValidationMessage(err), "type is invalid")
	assert.Empty(t, sender.sent)
}

func TestSubmitProContact_MessageOptional(t *testing.T) {
	sender := &fakeSender{}
	uc := newTestUC(t, &fakeLeadRepo{}, sender)

	req := validProContact()
	req.Message = ""

	err := uc.SubmitProContact(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, sender.sent, 1)
}
