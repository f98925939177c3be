package textparser

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Config holds typed settings read by the Lexer and the Parser
type Config map[string]*setting

// NewConfig creates a new configuration object primed with all the
// default values expected by both the lexer and the parser.
func NewConfig() *Config {
	m := make(Config)
	// leaves of the tree are token values instead of tokens
	m.SetBool("parser.token_tree", false)
	// keep the start of file token so the grammar can match it
	m.SetBool("parser.match_sof", false)
	// tokens of this kind are dropped by the lexer
	m.SetString("lexer.skip_kind", "SKIP")
	// tokens of this kind make the lexer fail
	m.SetString("lexer.mismatch_kind", "MISMATCH")
	// inserted at the error offset in error messages
	m.SetString("errors.marker", DefaultMarker)
	// suggest keywords close to the offending token
	m.SetBool("errors.hints", true)
	// max edit distance for a keyword to be suggested
	m.SetInt("errors.hint_distance", 2)
	return &m
}

// configOrDefault returns a fresh default config for nil
func configOrDefault(cfg *Config) *Config {
	if cfg == nil {
		return NewConfig()
	}
	return cfg
}

// Copy returns a config holding the same settings that can be changed
// without affecting `c`
func (c *Config) Copy() *Config {
	m := make(Config, len(*c))
	for k, v := range *c {
		val := *v
		m[k] = &val
	}
	return &m
}

// Debug writes every setting, sorted by key, to `w`
func (c *Config) Debug(w io.Writer) {
	fmt.Fprintln(w, "Configuration")

	keys := make([]string, 0, len(*c))
	width := 0
	for k := range *c {
		keys = append(keys, k)
		width = max(width, len(k))
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "%s%s : %s\n", k, strings.Repeat(" ", width-len(k)), (*c)[k])
	}
}

// settingType guards the settings against being read or written as
// the wrong type.  A mismatch is a programming error and panics.
type settingType int

const (
	typeUndefined settingType = iota
	typeBool
	typeInt
	typeString
)

var settingTypeNames = [...]string{
	typeUndefined: "undefined",
	typeBool:      "bool",
	typeInt:       "int",
	typeString:    "string",
}

func (t settingType) String() string { return settingTypeNames[t] }

type setting struct {
	typ settingType
	b   bool
	i   int
	s   string
}

func (v *setting) String() string {
	switch v.typ {
	case typeBool:
		return fmt.Sprintf("%t (bool)", v.b)
	case typeInt:
		return fmt.Sprintf("%d (int)", v.i)
	case typeString:
		return fmt.Sprintf("%s (string)", v.s)
	default:
		return "(undefined)"
	}
}

// slot returns the setting under `path` ready to hold a value of type
// `t`, creating it if needed.  Settings keep the type they were first
// given.
func (c *Config) slot(path string, t settingType) *setting {
	v, ok := (*c)[path]
	if !ok {
		v = &setting{}
		(*c)[path] = v
	}
	if v.typ != typeUndefined && v.typ != t {
		panic(fmt.Sprintf("Setting `%s` holds a %s, can't store a %s", path, v.typ, t))
	}
	v.typ = t
	return v
}

// lookup returns the setting under `path`, which must exist and hold
// a value of type `t`
func (c *Config) lookup(path string, t settingType) *setting {
	v, ok := (*c)[path]
	if !ok {
		panic(fmt.Sprintf("Setting `%s` does not exist", path))
	}
	if v.typ != t {
		panic(fmt.Sprintf("Setting `%s` holds a %s, can't read a %s", path, v.typ, t))
	}
	return v
}

func (c *Config) SetBool(path string, v bool)     { c.slot(path, typeBool).b = v }
func (c *Config) SetInt(path string, v int)       { c.slot(path, typeInt).i = v }
func (c *Config) SetString(path string, v string) { c.slot(path, typeString).s = v }

func (c *Config) GetBool(path string) bool     { return c.lookup(path, typeBool).b }
func (c *Config) GetInt(path string) int       { return c.lookup(path, typeInt).i }
func (c *Config) GetString(path string) string { return c.lookup(path, typeString).s }
