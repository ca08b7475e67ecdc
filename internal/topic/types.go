// Package topic holds the read-only topic dataset: identifiers, records and the
// store the rest of the program looks selections up in.
package topic

// Side identifies one of the two opinion columns.
type Side string

const (
	SideFriends Side = "friends"
	SideSource  Side = "source"
)

// Sides lists both sides in display order.
var Sides = []Side{SideFriends, SideSource}

// Opinions is the set of responses attributed to one side for one topic.
type Opinions struct {
	Keywords         []string `yaml:"keywords,omitempty" json:"keywords,omitempty"`
	ExcludedKeywords []string `yaml:"excluded_keywords,omitempty" json:"excluded_keywords,omitempty"`
	Responses        []string `yaml:"responses" json:"responses"`
}

// Record pairs a topic with the opinions of both sides.
type Record struct {
	Name    string   `yaml:"name" json:"name"`
	Friends Opinions `yaml:"friends" json:"friends"`
	Source  Opinions `yaml:"source" json:"source"`
}

// ID returns the record's derived identifier.
func (r Record) ID() string { return ID(r.Name) }

// Opinions returns the opinions for the given side. Unknown sides yield the zero value.
func (r Record) Opinions(side Side) Opinions {
	switch side {
	case SideFriends:
		return r.Friends
	case SideSource:
		return r.Source
	default:
		return Opinions{}
	}
}

// SideLabel is the column heading for one side.
type SideLabel struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
}

// SideLabels holds the headings of both columns.
type SideLabels struct {
	Friends SideLabel `yaml:"friends" json:"friends"`
	Source  SideLabel `yaml:"source" json:"source"`
}

// Dataset is the static data document, corresponding to topics.yaml.
type Dataset struct {
	Title  string     `yaml:"title" json:"title"`
	About  string     `yaml:"about,omitempty" json:"about,omitempty"`
	Sides  SideLabels `yaml:"sides" json:"sides"`
	Topics []Record   `yaml:"topics" json:"topics"`
}

// Default labels used when the dataset leaves them empty.
const (
	DefaultTitle        = "On The Issues"
	DefaultFriendsTitle = "My Friends and Classmates"
	DefaultSourceTitle  = "Scraped Articles"
)

func (o Opinions) clone() Opinions {
	return Opinions{
		Keywords:         cloneStrings(o.Keywords),
		ExcludedKeywords: cloneStrings(o.ExcludedKeywords),
		Responses:        cloneStrings(o.Responses),
	}
}

func (r Record) clone() Record {
	return Record{Name: r.Name, Friends: r.Friends.clone(), Source: r.Source.clone()}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
