package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notemart/notemart/internal/server/http/dto"
)

// ContactHandler manages the public contact form and the admin inbox.
type ContactHandler struct {
	facade ContactFacade
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(facade ContactFacade) *ContactHandler {
	return &ContactHandler{facade: facade}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("name, email, subject and message are required"))
		return
	}

	contact, err := h.facade.SubmitContact(c.Request.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OKMessage("message sent", dto.FromContact(contact)))
}

// List handles GET /api/contact (admin).
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.facade.ListContacts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKList(len(contacts), dto.FromContacts(contacts)))
}

// Delete handles DELETE /api/contact/:id (admin).
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteContact(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("message deleted", nil))
}
