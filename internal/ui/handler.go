package ui

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	gomponents "maragu.dev/gomponents"

	"github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/view"
)

// Handler serves the server-rendered student records page
type Handler struct {
	Students services.StudentService
	Logger   zerolog.Logger
	Now      func() time.Time
}

// NewHandler creates the page handler over the student service
func NewHandler(students services.StudentService, logger zerolog.Logger) *Handler {
	return &Handler{Students: students, Logger: logger, Now: time.Now}
}

// Register mounts the page routes
func (h *Handler) Register(router gin.IRoutes) {
	router.GET("/", h.Page)
	router.POST("/ui/students", h.Submit)
	router.POST("/ui/students/:id/delete", h.Delete)
}

// newSession starts a session for one request. Deletes are confirmed in the browser before the POST.
func (h *Handler) newSession() *view.Session {
	return view.NewSession(
		ServiceBackend{Students: h.Students},
		view.WithConfirm(func(string) bool { return true }),
		view.WithClock(h.Now),
		view.WithLogger(h.Logger),
	)
}

// Page renders the list and the form; ?edit=<id> loads that record into the form
func (h *Handler) Page(c *gin.Context) {
	session := h.newSession()
	notice := session.Mount(c.Request.Context())

	if edit := c.Query("edit"); edit != "" {
		if id, err := strconv.ParseInt(edit, 10, 64); err == nil {
			session.EditRecord(id)
		}
	}

	renderHTML(c.Writer, http.StatusOK, studentsPage(session.State(), notice))
}

// Submit creates or updates a student from the posted form
func (h *Handler) Submit(c *gin.Context) {
	session := h.newSession()
	session.Mount(c.Request.Context())
	session.SetDraft(draftFromForm(c))

	notice := session.Submit(c.Request.Context())
	renderHTML(c.Writer, http.StatusOK, studentsPage(session.State(), notice))
}

// Delete removes a student. The posted draft form is kept unless it was editing the deleted record.
func (h *Handler) Delete(c *gin.Context) {
	session := h.newSession()
	session.Mount(c.Request.Context())

	if _, posted := c.GetPostForm("id"); posted {
		session.SetDraft(draftFromForm(c))
	}

	notice := view.Notice{Kind: view.NoticeError, Message: view.MsgDeleteFailed}
	if id, ok := parseFormID(c.Param("id")); ok {
		notice = session.Delete(c.Request.Context(), id)
	}
	renderHTML(c.Writer, http.StatusOK, studentsPage(session.State(), notice))
}

func draftFromForm(c *gin.Context) view.Draft {
	d := view.Draft{
		FirstName:             c.PostForm("firstName"),
		LastName:              c.PostForm("lastName"),
		GroupName:             c.PostForm("groupName"),
		Role:                  c.PostForm("role"),
		ExpectedSalary:        c.PostForm("expectedSalary"),
		ExpectedDateOfDefense: c.PostForm("expectedDateOfDefense"),
	}
	if id, ok := parseFormID(c.PostForm("id")); ok {
		d.ID = &id
	}
	return d
}

func parseFormID(text string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}
