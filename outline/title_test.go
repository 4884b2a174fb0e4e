package outline

import (
	"testing"

	"github.com/tsawler/titulus/model"
)

func TestDetectTitleJoinsCluster(t *testing.T) {
	doc := &model.Document{Pages: []model.Page{makePage(792,
		makeLine("Understanding Neural Networks", 24, 0, 100, "Helvetica-Bold"),
		makeLine("A Practical Guide", 23, 0, 130, "Helvetica-Bold"),
		makeLine("ordinary body text well below the title", 10, 0, 300, "Helvetica"),
	)}}

	got := NewEngine().DetectTitle(doc)
	want := "Understanding Neural Networks A Practical Guide"
	if got != want {
		t.Errorf("DetectTitle = %q, want %q", got, want)
	}
}

func TestDetectTitleFirstClusterOnly(t *testing.T) {
	// Two separated large-type clusters; the strict pass takes the
	// first (topmost) one.
	doc := &model.Document{Pages: []model.Page{makePage(792,
		makeLine("Distributed Systems Primer", 24, 0, 80, "Helvetica-Bold"),
		makeLine("Chapter One Material", 24, 0, 400, "Helvetica-Bold"),
	)}}

	got := NewEngine().DetectTitle(doc)
	if got != "Distributed Systems Primer" {
		t.Errorf("DetectTitle = %q, want first cluster only", got)
	}
}

func TestDetectTitleFlexibleRetry(t *testing.T) {
	// The strict pass only sees the short 24pt line. The flexible pass
	// admits the 20pt cluster and picks the largest cluster, whose
	// joined text is longer.
	doc := &model.Document{Pages: []model.Page{makePage(792,
		makeLine("Report", 24, 0, 50, "Helvetica-Bold"),
		makeLine("Annual Financial Statements", 20, 0, 300, "Helvetica-Bold"),
		makeLine("Fiscal Year 2024", 20, 0, 330, "Helvetica-Bold"),
	)}}

	got := NewEngine().DetectTitle(doc)
	want := "Annual Financial Statements Fiscal Year 2024"
	if got != want {
		t.Errorf("DetectTitle = %q, want flexible-pass result %q", got, want)
	}
}

func TestDetectTitleRejectsExclamation(t *testing.T) {
	doc := &model.Document{Pages: []model.Page{makePage(792,
		makeLine("Order Your Copy Today!", 28, 0, 100, "Helvetica-Bold"),
	)}}

	if got := NewEngine().DetectTitle(doc); got != "" {
		t.Errorf("DetectTitle = %q, want empty for exclamation ending", got)
	}
}

func TestDetectTitleRejectsOverlongCandidate(t *testing.T) {
	long := "this title candidate rambles on and on across far too many words " +
		"to plausibly be a document title because real titles are short " +
		"and this one just keeps going on past every reasonable bound set anywhere at all"

	doc := &model.Document{Pages: []model.Page{makePage(792,
		makeLine(long, 24, 0, 100, "Helvetica-Bold"),
	)}}

	if got := NewEngine().DetectTitle(doc); got != "" {
		t.Errorf("DetectTitle = %q, want empty for overlong candidate", got)
	}
}

func TestDetectTitleEmptyInputs(t *testing.T) {
	e := NewEngine()

	if got := e.DetectTitle(nil); got != "" {
		t.Errorf("DetectTitle(nil) = %q, want empty", got)
	}
	if got := e.DetectTitle(&model.Document{}); got != "" {
		t.Errorf("DetectTitle(no pages) = %q, want empty", got)
	}
	if got := e.DetectTitle(&model.Document{Pages: []model.Page{{Height: 792}}}); got != "" {
		t.Errorf("DetectTitle(empty page) = %q, want empty", got)
	}
}

func TestDetectTitleJudgesByFirstRunSize(t *testing.T) {
	// The line's average size is dragged down by a long small run, but
	// the first run sets the type and the detector follows it.
	mixed := model.TextLine{
		Text: "Compact Title",
		Size: 12,
		Page: 0,
		BBox: model.NewBBox(72, 100, 540, 124),
		Runs: []model.FontRun{
			{Text: "Compact Title", Size: 24, FontName: "Helvetica-Bold"},
		},
	}
	doc := &model.Document{Pages: []model.Page{makePage(792,
		mixed,
		makeLine("smaller subtitle type", 18, 0, 400, "Helvetica"),
	)}}

	if got := NewEngine().DetectTitle(doc); got != "Compact Title" {
		t.Errorf("DetectTitle = %q, want %q", got, "Compact Title")
	}
}
