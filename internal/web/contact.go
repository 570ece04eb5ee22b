package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/web/content"
)

const (
	msgMessageSent    = "Message sent successfully!"
	enterpriseSubject = "Enterprise Membership Enquiry"
)

type contactData struct {
	Info content.ContactInfo
	FAQ  []content.Question
	Form backend.ContactInput
}

func (h *Handler) contactForm(c *gin.Context) {
	var form backend.ContactInput
	if c.Query("enquiry") == "enterprise" {
		form.Subject = enterpriseSubject
	}
	if id := auth.CurrentIdentity(c); id != nil {
		form.Name = id.DisplayName
		form.Email = id.Email
	}
	c.HTML(http.StatusOK, "contact", newPage(c, "Contact Us", contactData{
		Info: content.Contact,
		FAQ:  content.ContactFAQ,
		Form: form,
	}))
}

func (h *Handler) sendContact(c *gin.Context) {
	in := backend.ContactInput{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Subject: c.PostForm("subject"),
		Message: c.PostForm("message"),
	}

	res := h.svc.SendContactMessage(c.Request.Context(), in)
	data := contactData{Info: content.Contact, FAQ: content.ContactFAQ}
	p := newPage(c, "Contact Us", nil)
	status := http.StatusOK
	if res.Success {
		p.Notice = msgMessageSent
	} else {
		status = res.HTTPStatus()
		p.Error = res.Error
		data.Form = in
	}
	p.Data = data
	c.HTML(status, "contact", p)
}
