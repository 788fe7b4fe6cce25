package report

import (
	"reflect"
	"testing"
	"time"
)

func finding(browser, tool, category string) Finding {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return Finding{
		Browser: browser, Username: "alice", Profile: "Default",
		Tool: tool, Category: category,
		URL: "https://example.test/", VisitCount: 1, Timestamp: &ts,
	}
}

func TestComputeSummary(t *testing.T) {
	rep := New("host", "linux", 90, false)
	rep.Findings["Chrome"] = []Finding{
		finding("Chrome", "ChatGPT", "Generative AI"),
		finding("Chrome", "Claude", "Generative AI"),
		finding("Chrome", "Midjourney", "Image AI"),
	}
	rep.Findings["Firefox"] = []Finding{
		finding("Firefox", "ChatGPT", "Generative AI"),
	}
	rep.ComputeSummary()

	s := rep.Summary
	if s.TotalFindings != 4 || s.UniqueTools != 3 || s.BrowsersScanned != 2 {
		t.Fatalf("bad summary: %+v", s)
	}
	if !reflect.DeepEqual(s.Tools, []string{"ChatGPT", "Claude", "Midjourney"}) {
		t.Errorf("tools not sorted/deduplicated: %v", s.Tools)
	}
	if s.Categories["Generative AI"] != 3 || s.Categories["Image AI"] != 1 {
		t.Errorf("bad category tally: %v", s.Categories)
	}
}

func TestComputeSummaryIsDerivedNotIncremental(t *testing.T) {
	rep := New("host", "linux", 30, false)
	rep.Findings["Chrome"] = []Finding{finding("Chrome", "ChatGPT", "Generative AI")}
	rep.ComputeSummary()
	if rep.Summary.TotalFindings != 1 {
		t.Fatalf("bad first summary: %+v", rep.Summary)
	}

	rep.Findings["Edge"] = []Finding{finding("Edge", "Claude", "Generative AI")}
	rep.ComputeSummary()
	if rep.Summary.TotalFindings != 2 || rep.Summary.BrowsersScanned != 2 {
		t.Fatalf("summary not recomputed from findings: %+v", rep.Summary)
	}
}

func TestComputeSummaryEmpty(t *testing.T) {
	rep := New("host", "linux", 30, false)
	rep.ComputeSummary()
	if rep.Summary.TotalFindings != 0 || len(rep.Summary.Tools) != 0 {
		t.Fatalf("bad empty summary: %+v", rep.Summary)
	}
}

func TestAllFindingsStableOrder(t *testing.T) {
	rep := New("host", "linux", 30, false)
	rep.Findings["Firefox"] = []Finding{finding("Firefox", "B", "Generative AI")}
	rep.Findings["Chrome"] = []Finding{finding("Chrome", "A", "Generative AI")}

	all := rep.AllFindings()
	if len(all) != 2 || all[0].Browser != "Chrome" || all[1].Browser != "Firefox" {
		t.Fatalf("expected browser-name order, got %+v", all)
	}
}
