// backend/grades/grades.go
package grades

// Fontainebleau bouldering grades, ordered by difficulty and mapped to
// consecutive integers. The numeric values are what route filtering and the
// grade-range slider operate on; the labels themselves do not sort correctly
// as strings ("6a+" must precede "6b").

// Unknown is the numeric value of an empty or unrecognized grade label. It is
// deliberately distinct from the lowest real grade (numeric 0) so unknown
// grades sort below everything and fall outside any non-negative grade range.
const Unknown = -1

var orderedLabels = []string{
	"2", "2+",
	"3", "3+",
	"4", "4+",
	"5", "5+",
	"6a", "6a+", "6b", "6b+", "6c", "6c+",
	"7a", "7a+", "7b", "7b+", "7c", "7c+",
	"8a", "8a+", "8b", "8b+", "8c", "8c+",
	"9a",
}

var labelToNumeric = func() map[string]int {
	m := make(map[string]int, len(orderedLabels))
	for i, label := range orderedLabels {
		m[label] = i
	}
	return m
}()

// ToNumeric maps a grade label to its ordering value. Unrecognized or empty
// labels map to Unknown.
func ToNumeric(label string) int {
	if n, ok := labelToNumeric[label]; ok {
		return n
	}
	return Unknown
}

// ToLabel maps an ordering value back to its label, "?" for anything out of
// range (including Unknown).
func ToLabel(numeric int) string {
	if numeric < 0 || numeric >= len(orderedLabels) {
		return "?"
	}
	return orderedLabels[numeric]
}

// Labels returns all grade labels ascending by difficulty. The returned slice
// is a copy; callers may reorder it freely.
func Labels() []string {
	out := make([]string, len(orderedLabels))
	copy(out, orderedLabels)
	return out
}

// Min and Max numeric values of the real grade scale.
func Min() int { return 0 }
func Max() int { return len(orderedLabels) - 1 }

var colorHex = map[string]string{
	"2": "#22c55e", "2+": "#22c55e",
	"3": "#22c55e", "3+": "#22c55e",
	"4": "#84cc16", "4+": "#84cc16",
	"5": "#84cc16", "5+": "#84cc16",
	"6a": "#eab308", "6a+": "#eab308",
	"6b": "#f59e0b", "6b+": "#f59e0b",
	"6c": "#ef4444", "6c+": "#ef4444",
	"7a": "#dc2626", "7a+": "#dc2626",
	"7b": "#b91c1c", "7b+": "#b91c1c",
	"7c": "#991b1b", "7c+": "#991b1b",
	"8a": "#7c2d12", "8a+": "#7c2d12",
	"8b": "#7c2d12", "8b+": "#7c2d12",
}

// ColorHex returns the display color for a grade label, with a neutral grey
// for grades outside the colored range.
func ColorHex(label string) string {
	if c, ok := colorHex[label]; ok {
		return c
	}
	return "#6b7280"
}

var colorClass = map[string]string{
	"2": "bg-green-500", "2+": "bg-green-500",
	"3": "bg-green-500", "3+": "bg-green-500",
	"4": "bg-lime-500", "4+": "bg-lime-500",
	"5": "bg-lime-500", "5+": "bg-lime-500",
	"6a": "bg-yellow-500", "6a+": "bg-yellow-500",
	"6b": "bg-orange-500", "6b+": "bg-orange-500",
	"6c": "bg-red-500", "6c+": "bg-red-500",
	"7a": "bg-red-600", "7a+": "bg-red-600",
	"7b": "bg-red-700", "7b+": "bg-red-700",
	"7c": "bg-red-800", "7c+": "bg-red-800",
	"8a": "bg-orange-800", "8a+": "bg-orange-800",
	"8b": "bg-orange-900", "8b+": "bg-orange-900",
}

// Color returns the CSS class for a grade label, with a neutral class for
// grades outside the colored range. Served alongside ColorHex so clients
// need no duplicate table.
func Color(label string) string {
	if c, ok := colorClass[label]; ok {
		return c
	}
	return "bg-rock-500"
}

// PopularityThresholds are the lower bounds of the popularity color bands,
// highest first.
var PopularityThresholds = []int{80, 60, 40, 0}

// PopularityColor returns the CSS class for a 0-100 popularity score.
func PopularityColor(popularity int) string {
	switch {
	case popularity >= 80:
		return "text-yellow-400"
	case popularity >= 60:
		return "text-orange-400"
	case popularity >= 40:
		return "text-blue-400"
	}
	return "text-rock-400"
}
