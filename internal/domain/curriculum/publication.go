package curriculum

// Publishable is any curriculum node carrying its own publication flag.
type Publishable interface {
	Published() bool
}

func (j Journey) Published() bool  { return j.IsPublished }
func (l Level) Published() bool    { return l.IsPublished }
func (l Lesson) Published() bool   { return l.IsPublished }
func (a Activity) Published() bool { return a.IsPublished }

// IsVisibleToLearner reports the node's own publication flag. Flags do not
// cascade: a published lesson under a draft level is still published, and
// callers that want every ancestor to be published must check each one
// (see Path.Flags).
func IsVisibleToLearner(p Publishable) bool {
	return p.Published()
}

// Status is the badge label for a node's own flag.
func Status(p Publishable) string {
	if p.Published() {
		return "Published"
	}
	return "Draft"
}

// PathFlags holds the independent publication flags along an activity's
// ancestry.
type PathFlags struct {
	Journey  bool `json:"journey"`
	Level    bool `json:"level"`
	Lesson   bool `json:"lesson"`
	Activity bool `json:"activity"`
}
