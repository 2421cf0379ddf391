package services

import (
	"testing"
	"time"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
)

// กติกาของ snapshot/restore: field ต้องกลับมาเท่าเดิมเป๊ะ รวมวันที่

func TestJobDraftRoundTrip(t *testing.T) {
	draft := &entity.Job{
		Title:              "Data Engineer",
		Location:           "Mumbai",
		Category:           "Engineering",
		EmploymentType:     "Full-time",
		WorkModel:          "Remote",
		Experience:         "2-4 years",
		Salary:             1500000.50,
		Skills:             "Go, Kafka, SQL",
		Company:            "Acme",
		JobDescription:     "Pipelines",
		Status:             entity.PostStatusOpen,
		OpeningStartDate:   entity.NewDateOnly(2026, time.January, 10),
		LastApplyDate:      entity.NewDateOnly(2026, time.February, 28),
		NumberOfOpenings:   5,
		Perks:              "Insurance",
		CompanyDescription: "We build things",
	}

	content, err := snapshotJob(draft)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	got, err := restoreJob(content)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	if got.Title != draft.Title ||
		got.Location != draft.Location ||
		got.Category != draft.Category ||
		got.EmploymentType != draft.EmploymentType ||
		got.WorkModel != draft.WorkModel ||
		got.Experience != draft.Experience ||
		got.Salary != draft.Salary ||
		got.Skills != draft.Skills ||
		got.Company != draft.Company ||
		got.JobDescription != draft.JobDescription ||
		got.Status != draft.Status ||
		got.NumberOfOpenings != draft.NumberOfOpenings ||
		got.Perks != draft.Perks ||
		got.CompanyDescription != draft.CompanyDescription {
		t.Errorf("restored job differs:\n got %+v\nwant %+v", got, draft)
	}
	if !got.OpeningStartDate.Equal(draft.OpeningStartDate.Time) {
		t.Errorf("openingStartDate = %v, want %v", got.OpeningStartDate, draft.OpeningStartDate)
	}
	if !got.LastApplyDate.Equal(draft.LastApplyDate.Time) {
		t.Errorf("lastApplyDate = %v, want %v", got.LastApplyDate, draft.LastApplyDate)
	}
}

func TestInternshipDraftRoundTrip(t *testing.T) {
	draft := &entity.Internship{
		Title:            "QA Intern",
		Company:          "Acme",
		Location:         "Bengaluru",
		Duration:         "3 months",
		Stipend:          "15000/month",
		Qualifications:   "B.Tech",
		Skills:           "Selenium",
		Description:      "Test things",
		Status:           entity.PostStatusOpen,
		OpeningStartDate: entity.NewDateOnly(2026, time.May, 1),
		LastApplyDate:    entity.NewDateOnly(2026, time.May, 20),
		NumberOfOpenings: 2,
	}

	content, err := snapshotInternship(draft)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	got, err := restoreInternship(content)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	if got.Title != draft.Title ||
		got.Company != draft.Company ||
		got.Location != draft.Location ||
		got.Duration != draft.Duration ||
		got.Stipend != draft.Stipend ||
		got.Qualifications != draft.Qualifications ||
		got.Skills != draft.Skills ||
		got.Description != draft.Description ||
		got.Status != draft.Status ||
		got.NumberOfOpenings != draft.NumberOfOpenings {
		t.Errorf("restored internship differs:\n got %+v\nwant %+v", got, draft)
	}
	if !got.OpeningStartDate.Equal(draft.OpeningStartDate.Time) {
		t.Errorf("openingStartDate = %v, want %v", got.OpeningStartDate, draft.OpeningStartDate)
	}
}

func TestDraftZeroDates(t *testing.T) {
	content, err := snapshotJob(&entity.Job{Title: "No dates", Company: "Acme"})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	got, err := restoreJob(content)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !got.OpeningStartDate.IsZero() || !got.LastApplyDate.IsZero() {
		t.Errorf("zero dates should stay zero, got %v / %v", got.OpeningStartDate, got.LastApplyDate)
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	if _, err := restoreJob([]byte("not json")); err == nil {
		t.Error("restoreJob accepted garbage")
	}
	if _, err := restoreInternship([]byte(`{"numberOfOpenings":"five"}`)); err == nil {
		t.Error("restoreInternship accepted type mismatch")
	}
}
