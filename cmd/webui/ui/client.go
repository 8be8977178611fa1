package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"
)

// Session talks to the registry API and keeps the sessionId cookie
// between calls.
type Session struct {
	BaseURL string
	http    *http.Client
}

func NewSession() *Session {
	jar, _ := cookiejar.New(nil)
	return &Session{
		http: &http.Client{Jar: jar, Timeout: 10 * time.Second},
	}
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func (s *Session) postJSON(path string, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := s.http.Post(s.BaseURL+path, "application/json", bytes.NewReader(b))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeEnvelope(resp, out)
}

func decodeEnvelope(resp *http.Response, out any) error {
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}
	if env.Code != 0 {
		if env.Msg != "" {
			return fmt.Errorf("%s", env.Msg)
		}
		return fmt.Errorf("server error (code %d)", env.Code)
	}
	if out != nil && env.Data != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

type LoginData struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Redirect string `json:"redirect"`
}

// Login authenticates and stores the session cookie on success.
func (s *Session) Login(host string, port int, username, password string) (LoginData, error) {
	s.BaseURL = fmt.Sprintf("http://%s:%d", host, port)
	var data LoginData
	err := s.postJSON("/api/login", map[string]string{
		"username": username,
		"password": password,
	}, &data)
	return data, err
}

type SoftwareRow struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Version    string `json:"version"`
	Author     string `json:"author"`
	Desc       string `json:"desc"`
	CreateTime string `json:"createTime"`
	Enabled    bool   `json:"enabled"`
}

// List fetches one page of the admin software listing.
func (s *Session) List(page, limit int, keyword string) (int, []SoftwareRow, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	resp, err := s.http.Get(s.BaseURL + "/api/software?" + q.Encode())
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var body struct {
		Total int           `json:"total"`
		Data  []SoftwareRow `json:"data"`
		Code  int           `json:"code"`
		Msg   string        `json:"msg"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, nil, err
	}
	if body.Code != 0 {
		return 0, nil, fmt.Errorf("%s", body.Msg)
	}
	return body.Total, body.Data, nil
}

func (s *Session) Toggle(id int64, enabled bool) error {
	b, _ := json.Marshal(map[string]bool{"enabled": enabled})
	req, err := http.NewRequest(http.MethodPut,
		fmt.Sprintf("%s/api/software/%d/toggle", s.BaseURL, id), bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeEnvelope(resp, nil)
}

func (s *Session) Delete(id int64) error {
	req, err := http.NewRequest(http.MethodDelete,
		fmt.Sprintf("%s/api/software/%d", s.BaseURL, id), nil)
	if err != nil {
		return err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeEnvelope(resp, nil)
}

// Add registers a software entry (no file attachment from the TUI).
func (s *Session) Add(name, version, author, desc string) (int64, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for field, val := range map[string]string{
		"name": name, "version": version, "author": author, "desc": desc,
	} {
		if err := mw.WriteField(field, val); err != nil {
			return 0, err
		}
	}
	if err := mw.Close(); err != nil {
		return 0, err
	}
	resp, err := s.http.Post(s.BaseURL+"/api/software", mw.FormDataContentType(), &buf)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var data struct {
		ID int64 `json:"id"`
	}
	if err := decodeEnvelope(resp, &data); err != nil {
		return 0, err
	}
	return data.ID, nil
}

func (s *Session) Logout() {
	resp, err := s.http.Post(s.BaseURL+"/api/logout", "application/json", nil)
	if err == nil {
		resp.Body.Close()
	}
}
