package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"glidechart/chart"
	"glidechart/internal/config"
	"glidechart/render"
)

func TestWebServerShowsInitialDatasetSettled(t *testing.T) {
	t.Setenv("GLIDECHART_DATASET", "2026")
	env, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s, err := newWebServer(env, nil)
	if err != nil {
		t.Fatalf("newWebServer: %v", err)
	}

	ref, err := chart.New(env.Chart(), chart.DemoDatasets())
	if err != nil {
		t.Fatalf("chart.New: %v", err)
	}
	if err := ref.SelectDataset("2026"); err != nil {
		t.Fatal(err)
	}
	ref.Tick(chart.MorphDuration)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	body := rec.Body.String()
	i := strings.Index(body, ">2026</button>")
	if i < 0 {
		t.Fatalf("no 2026 toggle")
	}
	if btn := body[strings.LastIndex(body[:i], "<button"):i]; !strings.Contains(btn, `class="active"`) {
		t.Fatalf("2026 not marked active: %q", btn)
	}
	if !strings.Contains(body, render.SVG(ref.Frame())) {
		t.Fatalf("first page is not the settled 2026 curve")
	}
}

func TestWebServerRejectsUnknownDataset(t *testing.T) {
	t.Setenv("GLIDECHART_DATASET", "1999")
	env, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := newWebServer(env, nil); !errors.Is(err, chart.ErrUnknownDataset) {
		t.Fatalf("err=%v, want ErrUnknownDataset", err)
	}
}
