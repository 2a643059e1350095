package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aru-research/internal/config"
	"aru-research/internal/models"

	"github.com/golang-jwt/jwt/v4"
)

func fetchProjects(t *testing.T) []models.Project {
	app := CreateTestApp()
	req := httptest.NewRequest("GET", "/api/projects", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("List projects request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	var projects []models.Project
	if err := json.NewDecoder(resp.Body).Decode(&projects); err != nil {
		t.Fatalf("Error decoding projects: %v", err)
	}
	return projects
}

func TestCreateProjectRequiresToken(t *testing.T) {
	app := CreateTestApp()

	body := map[string]interface{}{
		"name": "Unauthorized Project", "startDate": "2026-01-01", "endDate": "2026-06-30",
		"sampleSize": 100, "sampleAchieved": 0,
	}
	resp := postJSON(t, app, "/api/projects", body, "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without token, got %d", resp.StatusCode)
	}
}

func TestCreateProjectForbiddenRole(t *testing.T) {
	app := CreateTestApp()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   1,
		"role": "member",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(config.SecretKey)
	if err != nil {
		t.Fatalf("Error signing token: %v", err)
	}

	body := map[string]interface{}{
		"name": "Forbidden Project", "startDate": "2026-01-01", "endDate": "2026-06-30",
		"sampleSize": 100, "sampleAchieved": 0,
	}
	resp := postJSON(t, app, "/api/projects", body, tokenString)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("Expected status 403 for non-admin role, got %d", resp.StatusCode)
	}
}

// TestCreateProjectSampleValidation: sampel tercapai tidak boleh melebihi target
func TestCreateProjectSampleValidation(t *testing.T) {
	app := CreateTestApp()
	token := LoginTestAdmin(app, t)

	body := map[string]interface{}{
		"name": "Overachieved Project", "startDate": "2026-01-01", "endDate": "2026-06-30",
		"sampleSize": 10, "sampleAchieved": 20,
	}
	resp := postJSON(t, app, "/api/projects", body, token)
	result := decodeBody(t, resp)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", resp.StatusCode)
	}
	if result["error"] != "Sample achieved cannot be greater than sample size." {
		t.Errorf("Unexpected error message: %v", result["error"])
	}
}

// TestCreateAndListProjects: create sukses dan list terurut berdasarkan endDate
func TestCreateAndListProjects(t *testing.T) {
	app := CreateTestApp()
	token := LoginTestAdmin(app, t)

	later := map[string]interface{}{
		"name": "Later Project", "startDate": "2030-01-01", "endDate": "2031-12-31",
		"sampleSize": 500, "sampleAchieved": 120,
	}
	earlier := map[string]interface{}{
		"name": "Earlier Project", "startDate": "2030-01-01", "endDate": "2030-06-30",
		"sampleSize": 200, "sampleAchieved": 200,
	}

	for _, body := range []map[string]interface{}{later, earlier} {
		resp := postJSON(t, app, "/api/projects", body, token)
		result := decodeBody(t, resp)
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d (%v)", resp.StatusCode, result)
		}
		project, ok := result["project"].(map[string]interface{})
		if !ok {
			t.Fatalf("Expected project field in response, got %v", result)
		}
		if project["name"] != body["name"] {
			t.Errorf("Expected project name %v, got %v", body["name"], project["name"])
		}
	}

	// Earlier Project selesai lebih dulu, jadi harus muncul sebelum Later Project
	projects := fetchProjects(t)
	earlierIdx, laterIdx := -1, -1
	for i, project := range projects {
		switch project.Name {
		case "Earlier Project":
			earlierIdx = i
		case "Later Project":
			laterIdx = i
		}
	}
	if earlierIdx == -1 || laterIdx == -1 {
		t.Fatalf("Expected both projects in list")
	}
	if earlierIdx > laterIdx {
		t.Errorf("Expected projects sorted by ascending end date")
	}
}
