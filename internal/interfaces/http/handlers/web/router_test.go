package web

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// Stripped-down versions of the real page templates. The handlers only need
// template names to resolve; assertions run against these markers.
const testTemplates = `
{{define "dashboard.html"}}dashboard open={{.Stats.Open}} in_progress={{.Stats.InProgress}} done={{.Stats.Done}} total={{.Stats.Total}} overdue={{len .Overdue}} recent={{len .Recent}}{{end}}
{{define "tickets_list.html"}}list total={{.Total}} search={{.Search}}{{range .Tickets}} [{{.ID}}:{{.Title}}]{{end}}{{end}}
{{define "ticket_detail.html"}}detail id={{.Ticket.ID}} title={{.Ticket.Title}} body={{.DescriptionHTML}} comment_error={{.CommentError}} draft={{.CommentDraft}}{{end}}
{{define "ticket_form.html"}}form action={{.Action}} error={{.Error}} title={{.Form.Title}} priority={{.Form.Priority}} due={{.Form.DueDate}}{{end}}
{{define "error.html"}}error status={{.Status}} message={{.Message}}{{end}}
`

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))

	router.GET("/", h.Dashboard)
	router.GET("/tickets", h.ListTickets)
	router.GET("/tickets/new", h.NewTicketForm)
	router.POST("/tickets", h.CreateTicket)
	router.GET("/tickets/:id", h.ShowTicket)
	router.GET("/tickets/:id/edit", h.EditTicketForm)
	router.POST("/tickets/:id", h.UpdateTicket)
	router.POST("/tickets/:id/delete", h.DeleteTicket)
	router.PATCH("/tickets/:id/status", h.UpdateStatus)
	router.POST("/tickets/:id/comments", h.AddComment)
	router.POST("/tickets/:id/comments/:commentId/delete", h.DeleteComment)

	return router
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func doForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}
