package scoreboard

import "strings"

const mediaTV = "TV"

// broadcasts lists TV networks in feed order. National TV entries win; regional geo
// broadcasts are only consulted when there are none.
func (c competitionRecord) broadcasts() []string {
	names := newOrderedSet()
	for _, b := range c.Broadcasts {
		if media, _ := b.Media.(string); media != mediaTV {
			continue
		}
		for _, name := range b.Names {
			names.add(name)
		}
	}
	if names.len() > 0 {
		return names.values()
	}

	for _, geo := range c.GeoBroadcasts {
		if geo.Media == nil || deref(geo.Media.Type) != mediaTV {
			continue
		}
		if geo.Type == nil || deref(geo.Type.ShortName) == "" {
			continue
		}
		label := strings.TrimSpace(*geo.Type.ShortName + " " + strings.TrimSpace(deref(geo.Media.Channel)))
		if label != "" {
			names.add(label)
		}
	}
	return names.values()
}

type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{}), items: []string{}}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *orderedSet) len() int { return len(s.items) }

func (s *orderedSet) values() []string { return s.items }
