// Package api renders the student pages and the JSON endpoints on top of
// a roster.
package api

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rollbook/rollbook/auth"
	authapi "github.com/rollbook/rollbook/auth/api"
	"github.com/rollbook/rollbook/internal/logutil"
	"github.com/rollbook/rollbook/roster"
)

//go:embed templates/*.html public/*
var assets embed.FS

// SessionToken is the constant token handed out by the login endpoint.
// There is no real session management behind it, it only feeds the
// token-cookie shortcut of the security realm.
const SessionToken = "FOOBAR"

type (
	handler struct {
		students *roster.Roster
		tokens   auth.TokenStore
		pages    *template.Template
	}

	studentRow struct {
		Index int
		roster.Student
	}
)

// AsHandler builds the whole page/API surface. tokens may be nil, the
// login endpoint then only sets the cookie.
func AsHandler(students *roster.Roster, tokens auth.TokenStore) (http.Handler, error) {
	pages, err := template.ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("unable to parse page templates, cause %w", err)
	}
	h := &handler{students: students, tokens: tokens, pages: pages}
	router := httprouter.New()
	router.HandlerFunc("GET", "/", h.home)
	router.HandlerFunc("GET", "/students", h.listPage)
	// httprouter cannot mix /students/create with /students/:id on the
	// same method, the handler tells them apart instead
	router.GET("/students/:id", h.detailsOrForm)
	router.HandlerFunc("POST", "/students/create", h.createStudent)
	router.PUT("/students/:id", h.updateStudent)
	router.HandlerFunc("GET", "/api/students", h.listJSON)
	router.POST("/api/students/:id", h.storeJSON)
	router.HandlerFunc("POST", "/api/login", h.login)
	router.GET("/public/*filepath", h.static)
	return router, nil
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, page string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := h.pages.ExecuteTemplate(w, page, data)
	if err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Str("page", page).Msg("Unable to render page")
	}
}

func (h *handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home.html", nil)
}

func (h *handler) listPage(w http.ResponseWriter, r *http.Request) {
	students, err := h.students.List(r.Context())
	if err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("Unable to load students")
		http.Error(w, "unable to load students, server is mis-behaving", http.StatusInternalServerError)
		return
	}
	rows := make([]studentRow, 0, len(students))
	for i, s := range students {
		rows = append(rows, studentRow{Index: i, Student: s})
	}
	h.render(w, r, "students.html", struct{ Students []studentRow }{rows})
}

func (h *handler) detailsOrForm(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	id := params.ByName("id")
	if id == "create" {
		q := r.URL.Query()
		h.render(w, r, "create_student.html", struct{ Created, Error bool }{
			Created: q.Get("created") != "",
			Error:   q.Get("error") != "",
		})
		return
	}
	idx, err := strconv.Atoi(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	student, err := h.students.Get(r.Context(), idx)
	var missing roster.NotFound
	if errors.As(err, &missing) {
		http.NotFound(w, r)
		return
	} else if err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("Unable to load students")
		http.Error(w, "unable to load students, server is mis-behaving", http.StatusInternalServerError)
		return
	}
	h.render(w, r, "student_details.html", studentRow{Index: idx, Student: student})
}

func (h *handler) createStudent(w http.ResponseWriter, r *http.Request) {
	if err := h.storeFromForm(r); err != nil {
		http.Redirect(w, r, "/students/create?error=1", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/students/create?created=1", http.StatusSeeOther)
}

func (h *handler) updateStudent(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	if err := h.storeFromForm(r); err != nil {
		http.Redirect(w, r, fmt.Sprintf("/students/%v?error=1", params.ByName("id")), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/students/%v?updated=1", params.ByName("id")), http.StatusSeeOther)
}

func (h *handler) storeFromForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return h.students.Add(r.Context(), roster.Student{
		Name:   r.PostFormValue("name"),
		School: r.PostFormValue("school"),
	})
}

func (h *handler) listJSON(w http.ResponseWriter, r *http.Request) {
	students, err := h.students.List(r.Context())
	if err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("Unable to load students")
		http.Error(w, "error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(students)
}

// storeJSON serves both /api/students/create and /api/students/:id, the
// latter appends as well because the store has no rewrite operation.
func (h *handler) storeJSON(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var student roster.Student
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&student); err != nil {
			http.Error(w, "error", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "error", http.StatusBadRequest)
			return
		}
		student.Name = r.PostFormValue("name")
		student.School = r.PostFormValue("school")
	}
	if err := h.students.Add(r.Context(), student); err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("Unable to store student")
		http.Error(w, "error", http.StatusInternalServerError)
		return
	}
	fmt.Fprint(w, "ok")
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	if h.tokens != nil {
		if err := h.tokens.Save(r.Context(), SessionToken); err != nil {
			logger := logutil.GetOrDefault(r.Context())
			logger.Error().Err(err).Msg("Unable to save session token")
			http.Error(w, "error", http.StatusInternalServerError)
			return
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     authapi.TokenCookie,
		Value:    SessionToken,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(time.Hour),
	})
	fmt.Fprint(w, "OK")
}
