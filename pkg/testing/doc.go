// Package testing provides a widget testing framework for docskit.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestPicker(t *testing.T) {
//	    tester := docstest.NewWidgetTesterWithT(t)
//	    var got string
//	    tester.PumpWidget(widgets.DateTimePicker{
//	        Label:    "Publish",
//	        Value:    "2024-03-05T14:30:00",
//	        OnChange: func(v string) { got = v },
//	    })
//
//	    // Simulate input
//	    tester.EnterText(docstest.ByClass("date-time-picker__date"), "2024-03-10")
//
//	    // Assert on the callback and the rendered markup
//	    if got != "2024-03-10T14:30:00" { ... }
//	    if !tester.Find(docstest.ByID("datetime-publish")).Exists() { ... }
//	}
//
// # Snapshot Testing
//
// Compare rendered HTML against a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/picker.golden.html")
//
// Update snapshots with:
//
//	DOCSKIT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Time
//
// The tester's FakeClock gives widgets a deterministic "today":
//
//	tester.Clock().Set(time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC))
//	picker.Editor = datetime.Editor{Location: time.UTC, Now: tester.Clock().Now}
package testing
