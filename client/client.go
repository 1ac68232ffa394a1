// client.go - Typed Go client for the SurgiConnect API
// A thin facade translating application actions into HTTP calls: one method
// per endpoint, bearer token injected on every request once obtained. The
// client keeps no state beyond the token; every read re-fetches from the
// server.

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"surgiconnect-backend/models"
)

// APIError carries the server's error string alongside the HTTP status.
type APIError struct {
	StatusCode int    // HTTP status of the failed request
	Message    string // Server-provided "error" field (or a fallback)
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Client is a SurgiConnect API client bound to one base URL.
type Client struct {
	BaseURL    string       // e.g. "http://localhost:5000"
	HTTPClient *http.Client // Overridable transport
	token      string       // Bearer token, set after Login/Signup
}

// New creates a client for the given base URL (no trailing slash needed).
func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTPClient: http.DefaultClient}
}

// SetToken installs a previously obtained session token.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the session token currently in use (empty before login).
func (c *Client) Token() string { return c.token }

// do runs one API request: marshals body (when non-nil), injects the bearer
// token, and decodes the JSON response into out (when non-nil). Non-2xx
// responses come back as *APIError.
func (c *Client) do(method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.BaseURL+"/api"+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: "Request failed"}
		var failure struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil && failure.Error != "" {
			apiErr.Message = failure.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ---- Auth ----

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type PingResponse struct {
	OK        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
}

// Ping checks backend liveness.
func (c *Client) Ping() (*PingResponse, error) {
	var out PingResponse
	if err := c.do(http.MethodGet, "/ping", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup creates an account and keeps the issued token for later calls.
func (c *Client) Signup(req SignupRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(http.MethodPost, "/auth/signup", req, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// Login authenticates and keeps the issued token for later calls.
func (c *Client) Login(email, password string) (*AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// ---- Patients ----

type TaskRequest struct {
	Title    string `json:"title,omitempty"`
	Time     string `json:"time,omitempty"`
	Category string `json:"category,omitempty"`
}

type TaskUpdate struct {
	Title     *string `json:"title,omitempty"`
	Time      *string `json:"time,omitempty"`
	Category  *string `json:"category,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

type MedicationsResponse struct {
	Medications []models.Medication    `json:"medications"`
	TodayLogs   []models.MedicationLog `json:"todayLogs"`
	AllLogs     []models.MedicationLog `json:"allLogs"`
}

type MarkTakenResponse struct {
	Success bool                 `json:"success"`
	Log     models.MedicationLog `json:"log"`
}

// Patient fetches (or lazily creates) a recovery record.
func (c *Client) Patient(patientID uint) (*models.Patient, error) {
	var out models.Patient
	if err := c.do(http.MethodGet, patientPath(patientID, ""), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddTask appends a care task and returns the updated record.
func (c *Client) AddTask(patientID uint, req TaskRequest) (*models.Patient, error) {
	var out models.Patient
	if err := c.do(http.MethodPost, patientPath(patientID, "/tasks"), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask applies a partial update to one task.
func (c *Client) UpdateTask(patientID, taskID uint, req TaskUpdate) (*models.Patient, error) {
	var out models.Patient
	path := patientPath(patientID, "/tasks/"+strconv.FormatUint(uint64(taskID), 10))
	if err := c.do(http.MethodPatch, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask removes one task and returns the updated record.
func (c *Client) DeleteTask(patientID, taskID uint) (*models.Patient, error) {
	var out models.Patient
	path := patientPath(patientID, "/tasks/"+strconv.FormatUint(uint64(taskID), 10))
	if err := c.do(http.MethodDelete, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Medications fetches the medication list plus today's and all log entries.
func (c *Client) Medications(patientID uint) (*MedicationsResponse, error) {
	var out MedicationsResponse
	if err := c.do(http.MethodGet, patientPath(patientID, "/medications"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkMedicationTaken appends an intake log entry for the medication.
func (c *Client) MarkMedicationTaken(patientID, medicationID uint, medicationName string) (*MarkTakenResponse, error) {
	var out MarkTakenResponse
	body := map[string]interface{}{"medicationId": medicationID, "medicationName": medicationName}
	if err := c.do(http.MethodPost, patientPath(patientID, "/medications"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddMedication adds a medication with no lastTaken stamp yet.
func (c *Client) AddMedication(patientID uint, name, frequency string) (*models.Patient, error) {
	var out models.Patient
	body := map[string]string{"name": name, "frequency": frequency}
	if err := c.do(http.MethodPut, patientPath(patientID, "/medications"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func patientPath(patientID uint, suffix string) string {
	return "/patients/" + strconv.FormatUint(uint64(patientID), 10) + suffix
}

// ---- Family tasks ----

type FamilyTaskRequest struct {
	Assignee string `json:"assignee,omitempty"`
	Task     string `json:"task,omitempty"`
	Time     string `json:"time,omitempty"`
}

type FamilyTaskUpdate struct {
	Assignee *string `json:"assignee,omitempty"`
	Task     *string `json:"task,omitempty"`
	Time     *string `json:"time,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type FamilyTasksResponse struct {
	Tasks []models.FamilyTask `json:"tasks"`
}

// FamilyTasks lists the caregiver tasks coordinated around a patient id.
func (c *Client) FamilyTasks(patientID uint) (*FamilyTasksResponse, error) {
	var out FamilyTasksResponse
	if err := c.do(http.MethodGet, familyPath(patientID, ""), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddFamilyTask appends a caregiver task (status starts as pending).
func (c *Client) AddFamilyTask(patientID uint, req FamilyTaskRequest) (*FamilyTasksResponse, error) {
	var out FamilyTasksResponse
	if err := c.do(http.MethodPost, familyPath(patientID, ""), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFamilyTask applies a partial update to one caregiver task.
func (c *Client) UpdateFamilyTask(patientID, taskID uint, req FamilyTaskUpdate) (*FamilyTasksResponse, error) {
	var out FamilyTasksResponse
	path := familyPath(patientID, "/"+strconv.FormatUint(uint64(taskID), 10))
	if err := c.do(http.MethodPatch, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFamilyTask removes one caregiver task.
func (c *Client) DeleteFamilyTask(patientID, taskID uint) (*FamilyTasksResponse, error) {
	var out FamilyTasksResponse
	path := familyPath(patientID, "/"+strconv.FormatUint(uint64(taskID), 10))
	if err := c.do(http.MethodDelete, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func familyPath(patientID uint, suffix string) string {
	return "/family/" + strconv.FormatUint(uint64(patientID), 10) + "/tasks" + suffix
}

// ---- Reference data ----

type DirectoryResponse struct {
	Hospitals   []models.Hospital   `json:"hospitals"`
	Specialists []models.Specialist `json:"specialists"`
}

type VideosResponse struct {
	Videos []models.Video `json:"videos"`
}

type HospitalsResponse struct {
	Hospitals []models.Hospital `json:"hospitals"`
}

// Directory searches hospitals and specialists by substring.
func (c *Client) Directory(search string) (*DirectoryResponse, error) {
	values := url.Values{}
	if search != "" {
		values.Set("search", search)
	}
	var out DirectoryResponse
	if err := c.do(http.MethodGet, "/directory"+query(values), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Videos searches the video library; category is an exact match filter.
func (c *Client) Videos(search, category string) (*VideosResponse, error) {
	values := url.Values{}
	if search != "" {
		values.Set("search", search)
	}
	if category != "" {
		values.Set("category", category)
	}
	var out VideosResponse
	if err := c.do(http.MethodGet, "/videos"+query(values), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Hospitals searches the hospital list by substring.
func (c *Client) Hospitals(search string) (*HospitalsResponse, error) {
	values := url.Values{}
	if search != "" {
		values.Set("search", search)
	}
	var out HospitalsResponse
	if err := c.do(http.MethodGet, "/hospitals"+query(values), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---- Community tips ----

type TipRequest struct {
	Content    string `json:"content"`
	VideoID    *uint  `json:"videoId,omitempty"`
	VideoTitle string `json:"videoTitle,omitempty"`
}

type TipsResponse struct {
	Tips []models.CommunityTip `json:"tips"`
}

type TipResponse struct {
	Tip models.CommunityTip `json:"tip"`
}

// Tips lists tips, optionally scoped to one video, ranked by upvotes.
func (c *Client) Tips(videoID *uint) (*TipsResponse, error) {
	values := url.Values{}
	if videoID != nil {
		values.Set("videoId", strconv.FormatUint(uint64(*videoID), 10))
	}
	var out TipsResponse
	if err := c.do(http.MethodGet, "/community/tips"+query(values), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddTip posts a tip; the server stamps the author from the session.
func (c *Client) AddTip(req TipRequest) (*TipResponse, error) {
	var out TipResponse
	if err := c.do(http.MethodPost, "/community/tips", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpvoteTip increments a tip's upvote counter (no authentication needed).
func (c *Client) UpvoteTip(tipID uint) (*TipResponse, error) {
	var out TipResponse
	path := "/community/tips/upvote/" + strconv.FormatUint(uint64(tipID), 10)
	if err := c.do(http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---- Hospital contact ----

type ContactRequest struct {
	HospitalID   uint   `json:"hospitalId"`
	HospitalName string `json:"hospitalName,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Message      string `json:"message"`
}

type ContactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

// ContactHospital submits a contact request (logged server-side only).
func (c *Client) ContactHospital(req ContactRequest) (*ContactResponse, error) {
	var out ContactResponse
	if err := c.do(http.MethodPost, "/hospitals/contact", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func query(values url.Values) string {
	encoded := values.Encode()
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}
