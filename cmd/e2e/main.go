package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"time"
)

func baseURL() string {
	env := os.Getenv("ENV")
	switch env {
	case "CI":
		return "http://moviepick-app:8080/api/v1"
	}
	return "http://localhost:8080/api/v1"
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
}

type recommendResponse struct {
	Genres   []string `json:"genres"`
	Movies   []string `json:"movies"`
	Excluded []string `json:"excluded"`
	Text     string   `json:"text"`
}

type feedbackResponse struct {
	Message string `json:"message"`
}

func main() {
	fmt.Println("Starting E2E checks for moviepick API...")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	if !waitForService(client) {
		os.Exit(1)
	}

	session, err := createSession(client)
	if err != nil {
		fmt.Printf("Create session failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Session created: %s\n", session)

	rec, err := recommend(client, session, "I love action movies")
	if err != nil {
		fmt.Printf("Recommend failed: %v\n", err)
		os.Exit(1)
	}
	if !slices.Equal(rec.Movies, []string{"Die Hard", "The Dark Knight", "John Wick", "Mission Impossible"}) {
		fmt.Printf("Unexpected recommendations: %v\n", rec.Movies)
		os.Exit(1)
	}
	fmt.Printf("Recommendations:\n%s\n", rec.Text)

	if err := dislike(client, session, "John Wick"); err != nil {
		fmt.Printf("Feedback failed: %v\n", err)
		os.Exit(1)
	}

	rec, err = recommend(client, session, "anything else?")
	if err != nil {
		fmt.Printf("Recommend failed: %v\n", err)
		os.Exit(1)
	}
	if slices.Contains(rec.Movies, "John Wick") {
		fmt.Printf("Disliked movie still recommended: %v\n", rec.Movies)
		os.Exit(1)
	}

	fmt.Println("\n All E2E checks passed!")
}

func waitForService(client *http.Client) bool {
	fmt.Println(" Waiting for service to be ready...")

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		resp, err := client.Get(baseURL() + "/sessions/healthcheck/preferences")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				fmt.Println(" Service is ready!")
				return true
			}
		}

		if i < maxRetries-1 {
			fmt.Printf(" Service not ready yet (attempt %d/%d)...\n", i+1, maxRetries)
			time.Sleep(2 * time.Second)
		}
	}

	fmt.Println(" Service didn't start in time")
	return false
}

func createSession(client *http.Client) (string, error) {
	fmt.Println("\n Step 1: Creating session...")

	var out sessionResponse
	if err := postJSON(client, "/sessions", nil, http.StatusCreated, &out); err != nil {
		return "", err
	}
	if out.SessionID == "" {
		return "", fmt.Errorf("empty session id")
	}
	return out.SessionID, nil
}

func recommend(client *http.Client, session, query string) (recommendResponse, error) {
	fmt.Printf("\n Step: Recommending for %q...\n", query)

	var out recommendResponse
	err := postJSON(client, "/sessions/"+session+"/recommendations", map[string]any{"query": query}, http.StatusOK, &out)
	return out, err
}

func dislike(client *http.Client, session, movie string) error {
	fmt.Printf("\n Step: Disliking %q...\n", movie)

	var out feedbackResponse
	return postJSON(client, "/sessions/"+session+"/feedback", map[string]any{"movie": movie, "liked": false}, http.StatusOK, &out)
}

func postJSON(client *http.Client, path string, in any, wantStatus int, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %v", err)
		}
		body = bytes.NewBuffer(data)
	}

	resp, err := client.Post(baseURL()+path, "application/json", body)
	if err != nil {
		return fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %v", err)
	}
	if resp.StatusCode != wantStatus {
		return fmt.Errorf("%s returned status %d: %s", path, resp.StatusCode, string(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %v", err)
	}
	return nil
}
