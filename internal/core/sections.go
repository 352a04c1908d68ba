package core

import (
	"bytes"
	"encoding/json"
	"sort"
)

// MarshalJSON writes sections in canonical order so repeated exports of the
// same teardown are byte-identical. Non-canonical keys (none are produced by
// the generator, but imports may carry them) sort alphabetically at the end.
func (s Sections) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	write := func(name SectionName, content string) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(string(name))
		if err != nil {
			return err
		}
		val, err := json.Marshal(content)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		return nil
	}

	for _, name := range CanonicalSections {
		content, ok := s[name]
		if !ok {
			continue
		}
		if err := write(name, content); err != nil {
			return nil, err
		}
	}

	var extras []SectionName
	for name := range s {
		if !name.IsCanonical() {
			extras = append(extras, name)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })
	for _, name := range extras {
		if err := write(name, s[name]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
