package model_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-candidateform/pkg/model"
	"github.com/goliatone/go-candidateform/pkg/testsupport"
)

func TestCandidateForm_Golden(t *testing.T) {
	goldenPath := filepath.Join("testdata", "candidate_form.golden.json")
	got := model.CandidateForm()
	if testsupport.WriteGolden(t, goldenPath, got) {
		return
	}

	want := testsupport.MustLoadFormModel(t, goldenPath)
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("candidate form mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidateForm_GoldenDescribesSubmission(t *testing.T) {
	raw := testsupport.MustReadGolden(t, filepath.Join("testdata", "candidate_form.golden.json"))

	var head struct {
		OperationID string `json:"operationId"`
		Endpoint    string `json:"endpoint"`
		Method      string `json:"method"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		t.Fatalf("decode golden: %v", err)
	}
	if head.OperationID != model.OperationSubmitApplication {
		t.Fatalf("operationId = %q, want %q", head.OperationID, model.OperationSubmitApplication)
	}
	if head.Endpoint != model.DefaultEndpoint || head.Method != "POST" {
		t.Fatalf("unexpected submission target %s %s", head.Method, head.Endpoint)
	}
}
