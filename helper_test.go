package inventory

import "fmt"

// record is a single captured log entry.
type record struct {
	level string
	msg   string
}

// recorder is a logging.Logger capturing records for assertions.
type recorder struct {
	records []record
}

func (r *recorder) Info(msg string, fields ...any)  { r.append("info", msg, fields...) }
func (r *recorder) Warn(msg string, fields ...any)  { r.append("warn", msg, fields...) }
func (r *recorder) Error(msg string, fields ...any) { r.append("error", msg, fields...) }

func (r *recorder) append(level, msg string, fields ...any) {
	r.records = append(r.records, record{level: level, msg: fmt.Sprintf("%s %v", msg, fields)})
}

// count returns the number of captured records at the given level.
func (r *recorder) count(level string) int {
	n := 0
	for _, rec := range r.records {
		if rec.level == level {
			n++
		}
	}
	return n
}
