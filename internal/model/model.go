package model

// File describes one generated translation unit: a header and its source.
type File struct {
	Version   string     `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	Name      string     `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Header    string     `json:"header,omitempty" yaml:"header,omitempty" toml:"header,omitempty"`
	Source    string     `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
	Namespace string     `json:"namespace,omitempty" yaml:"namespace,omitempty" toml:"namespace,omitempty"`
	Includes  []string   `json:"includes,omitempty" yaml:"includes,omitempty" toml:"includes,omitempty"`
	Enums     []Enum     `json:"enums,omitempty" yaml:"enums,omitempty" toml:"enums,omitempty"`
	Variables []Variable `json:"variables,omitempty" yaml:"variables,omitempty" toml:"variables,omitempty"`
	Arrays    []Array    `json:"arrays,omitempty" yaml:"arrays,omitempty" toml:"arrays,omitempty"`
	Functions []Function `json:"functions,omitempty" yaml:"functions,omitempty" toml:"functions,omitempty"`
	Classes   []Class    `json:"classes,omitempty" yaml:"classes,omitempty" toml:"classes,omitempty"`
}

type Enum struct {
	Name       string   `json:"name" yaml:"name" toml:"name"`
	Prefix     string   `json:"prefix,omitempty" yaml:"prefix,omitempty" toml:"prefix,omitempty"`
	Unprefixed bool     `json:"unprefixed,omitempty" yaml:"unprefixed,omitempty" toml:"unprefixed,omitempty"`
	Class      bool     `json:"class,omitempty" yaml:"class,omitempty" toml:"class,omitempty"`
	NoCounter  bool     `json:"no_counter,omitempty" yaml:"no_counter,omitempty" toml:"no_counter,omitempty"`
	Items      []string `json:"items,omitempty" yaml:"items,omitempty" toml:"items,omitempty"`
	Doc        string   `json:"doc,omitempty" yaml:"doc,omitempty" toml:"doc,omitempty"`
}

// Variable is a free or member variable. Getter asks for a generated
// accessor method on the owning class.
type Variable struct {
	Name      string   `json:"name" yaml:"name" toml:"name"`
	Type      string   `json:"type" yaml:"type" toml:"type"`
	TypeArgs  []string `json:"type_args,omitempty" yaml:"type_args,omitempty" toml:"type_args,omitempty"`
	Static    bool     `json:"static,omitempty" yaml:"static,omitempty" toml:"static,omitempty"`
	Extern    bool     `json:"extern,omitempty" yaml:"extern,omitempty" toml:"extern,omitempty"`
	Const     bool     `json:"const,omitempty" yaml:"const,omitempty" toml:"const,omitempty"`
	Constexpr bool     `json:"constexpr,omitempty" yaml:"constexpr,omitempty" toml:"constexpr,omitempty"`
	Value     string   `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Doc       string   `json:"doc,omitempty" yaml:"doc,omitempty" toml:"doc,omitempty"`
	Getter    bool     `json:"getter,omitempty" yaml:"getter,omitempty" toml:"getter,omitempty"`
}

// Array is a free or member array. Accessor asks for a generated indexed
// element accessor on the owning class.
type Array struct {
	Name         string   `json:"name" yaml:"name" toml:"name"`
	Type         string   `json:"type" yaml:"type" toml:"type"`
	Static       bool     `json:"static,omitempty" yaml:"static,omitempty" toml:"static,omitempty"`
	Const        bool     `json:"const,omitempty" yaml:"const,omitempty" toml:"const,omitempty"`
	Size         int      `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
	NewlineAlign bool     `json:"newline_align,omitempty" yaml:"newline_align,omitempty" toml:"newline_align,omitempty"`
	Items        []string `json:"items,omitempty" yaml:"items,omitempty" toml:"items,omitempty"`
	Doc          string   `json:"doc,omitempty" yaml:"doc,omitempty" toml:"doc,omitempty"`
	Accessor     bool     `json:"accessor,omitempty" yaml:"accessor,omitempty" toml:"accessor,omitempty"`
}

// Function is a free function whose body is given as statement lines.
type Function struct {
	Name      string   `json:"name" yaml:"name" toml:"name"`
	Returns   string   `json:"returns,omitempty" yaml:"returns,omitempty" toml:"returns,omitempty"`
	Arguments []string `json:"arguments,omitempty" yaml:"arguments,omitempty" toml:"arguments,omitempty"`
	Static    bool     `json:"static,omitempty" yaml:"static,omitempty" toml:"static,omitempty"`
	Inline    bool     `json:"inline,omitempty" yaml:"inline,omitempty" toml:"inline,omitempty"`
	Constexpr bool     `json:"constexpr,omitempty" yaml:"constexpr,omitempty" toml:"constexpr,omitempty"`
	Doc       string   `json:"doc,omitempty" yaml:"doc,omitempty" toml:"doc,omitempty"`
	Body      []string `json:"body,omitempty" yaml:"body,omitempty" toml:"body,omitempty"`
}

type Method struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Returns     string   `json:"returns,omitempty" yaml:"returns,omitempty" toml:"returns,omitempty"`
	Arguments   []string `json:"arguments,omitempty" yaml:"arguments,omitempty" toml:"arguments,omitempty"`
	Static      bool     `json:"static,omitempty" yaml:"static,omitempty" toml:"static,omitempty"`
	Virtual     bool     `json:"virtual,omitempty" yaml:"virtual,omitempty" toml:"virtual,omitempty"`
	PureVirtual bool     `json:"pure_virtual,omitempty" yaml:"pure_virtual,omitempty" toml:"pure_virtual,omitempty"`
	Const       bool     `json:"const,omitempty" yaml:"const,omitempty" toml:"const,omitempty"`
	Override    bool     `json:"override,omitempty" yaml:"override,omitempty" toml:"override,omitempty"`
	Final       bool     `json:"final,omitempty" yaml:"final,omitempty" toml:"final,omitempty"`
	Constexpr   bool     `json:"constexpr,omitempty" yaml:"constexpr,omitempty" toml:"constexpr,omitempty"`
	Inline      bool     `json:"inline,omitempty" yaml:"inline,omitempty" toml:"inline,omitempty"`
	Doc         string   `json:"doc,omitempty" yaml:"doc,omitempty" toml:"doc,omitempty"`
	Body        []string `json:"body,omitempty" yaml:"body,omitempty" toml:"body,omitempty"`
}

// Members is the member list shared by Class and Scope.
type Members struct {
	Enums     []Enum     `json:"enums,omitempty" yaml:"enums,omitempty" toml:"enums,omitempty"`
	Classes   []Class    `json:"classes,omitempty" yaml:"classes,omitempty" toml:"classes,omitempty"`
	Methods   []Method   `json:"methods,omitempty" yaml:"methods,omitempty" toml:"methods,omitempty"`
	Variables []Variable `json:"variables,omitempty" yaml:"variables,omitempty" toml:"variables,omitempty"`
	Arrays    []Array    `json:"arrays,omitempty" yaml:"arrays,omitempty" toml:"arrays,omitempty"`
	Scopes    []Scope    `json:"scopes,omitempty" yaml:"scopes,omitempty" toml:"scopes,omitempty"`
}

type Class struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Struct  bool   `json:"struct,omitempty" yaml:"struct,omitempty" toml:"struct,omitempty"`
	Parent  string `json:"parent,omitempty" yaml:"parent,omitempty" toml:"parent,omitempty"`
	Doc     string `json:"doc,omitempty" yaml:"doc,omitempty" toml:"doc,omitempty"`
	Members `yaml:",inline"`
}

// Scope is an access section (Label) or an anonymous member group.
type Scope struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Label   string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Doc     string `json:"doc,omitempty" yaml:"doc,omitempty" toml:"doc,omitempty"`
	Members `yaml:",inline"`
}
