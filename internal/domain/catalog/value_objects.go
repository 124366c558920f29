package catalog

import (
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownGroup         = errors.New("unknown customization group")
	ErrUnknownOption        = errors.New("unknown customization option")
	ErrSingleChoiceExceeded = errors.New("single-choice group accepts one option")
	ErrRequiredGroupEmpty   = errors.New("required customization group has no selection")
	ErrNotCustomizable      = errors.New("product is not customizable")
)

type GroupType string

const (
	GroupTypeRadio    GroupType = "radio"
	GroupTypeCheckbox GroupType = "checkbox"
)

type Option struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type CustomizationGroup struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Type     GroupType `json:"type"`
	Required bool      `json:"required"`
	Options  []Option  `json:"options"`
}

func (g CustomizationGroup) option(id string) (Option, bool) {
	for _, o := range g.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// SelectedGroup is one group's resolved choice, with names and prices captured at selection time.
type SelectedGroup struct {
	GroupID   string    `json:"groupId"`
	GroupName string    `json:"groupName"`
	Type      GroupType `json:"type"`
	Options   []Option  `json:"options"`
}

// Selection is a canonical set of customization choices: groups sorted by id and checkbox options
// sorted by id, so equal sets compare equal regardless of the order they were picked in.
type Selection struct {
	groups []SelectedGroup
}

func NewSelection(groups []SelectedGroup) Selection {
	cp := make([]SelectedGroup, 0, len(groups))
	for _, g := range groups {
		if len(g.Options) == 0 {
			continue
		}
		opts := append([]Option(nil), g.Options...)
		if g.Type == GroupTypeCheckbox {
			sort.Slice(opts, func(i, j int) bool { return opts[i].ID < opts[j].ID })
		}
		g.Options = opts
		cp = append(cp, g)
	}
	sort.Slice(cp, func(i, j int) bool { return cp[i].GroupID < cp[j].GroupID })
	return Selection{groups: cp}
}

func (s Selection) Groups() []SelectedGroup {
	return append([]SelectedGroup(nil), s.groups...)
}

func (s Selection) IsEmpty() bool {
	return len(s.groups) == 0
}

// Surcharge is the sum of all selected option prices.
func (s Selection) Surcharge() decimal.Decimal {
	total := decimal.Zero
	for _, g := range s.groups {
		for _, o := range g.Options {
			total = total.Add(o.Price)
		}
	}
	return total
}

// Key identifies the selection for line merging.
func (s Selection) Key() string {
	var b strings.Builder
	for i, g := range s.groups {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(g.GroupID)
		b.WriteByte('=')
		for j, o := range g.Options {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(o.ID)
		}
	}
	return b.String()
}

// OptionNames lists the chosen option names in display order.
func (s Selection) OptionNames() []string {
	var names []string
	for _, g := range s.groups {
		for _, o := range g.Options {
			names = append(names, o.Name)
		}
	}
	return names
}
