package contact

import (
	"errors"
	"net/http"
	"strings"

	"chitrakala-api/internal/api/respond"
	"chitrakala-api/internal/domain/content"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var validate = validator.New()

type Handler struct {
	Store content.Store
	Log   *logrus.Logger
}

// GET /api/contact
func (h *Handler) Get(c *gin.Context) {
	ct, err := h.Store.GetContact(c.Request.Context())
	if errors.Is(err, content.ErrNotFound) {
		d := content.DefaultContact()
		ct, err = &d, nil
	}
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to fetch contact info")
		return
	}
	c.JSON(http.StatusOK, ct)
}

// PUT /api/contact
func (h *Handler) Update(c *gin.Context) {
	var in content.Contact
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Invalid(c, "body", "must be a JSON contact document")
		return
	}
	emails, err := cleanEmails(in.Emails)
	if err != nil {
		respond.Error(c, h.Log, err, "")
		return
	}
	in.Emails = emails

	if err := h.Store.UpdateContact(c.Request.Context(), &in); err != nil {
		respond.Error(c, h.Log, err, "Failed to update contact info")
		return
	}

	h.Log.Info("✅ Contact info updated")
	c.JSON(http.StatusOK, gin.H{"message": "Contact information updated successfully", "data": in})
}

// cleanEmails drops blank entries and requires at least one well-formed
// address.
func cleanEmails(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if err := validate.Var(e, "email"); err != nil {
			return nil, &content.ValidationError{Field: "emails", Message: "invalid email format: " + e}
		}
		out = append(out, e)
	}
	if len(out) == 0 {
		return nil, &content.ValidationError{Field: "emails", Message: "at least one email address is required"}
	}
	return out, nil
}
