package cognates

import "time"

// Report is the result of one run.
type Report struct {
	// JSON is the nested language → dictionary → perspective → entries document.
	JSON []byte
	// Languages lists the title of every language block in first-visit order.
	Languages []string
	Stats     Stats
}

// Stats counts what a run went through.
type Stats struct {
	Languages            int
	Dictionaries         int
	PerspectivesResolved int
	PerspectivesScanned  int
	PerspectivesEmitted  int
	Entries              int
	Elapsed              time.Duration
}
