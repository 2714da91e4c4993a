package config

import "fmt"

// DestroyOption selects what happens to an object once its health runs out.
type DestroyOption int

const (
	DestroyNone DestroyOption = iota
	DestroyOnDeath
	DelayedDestroyOnDeath
	DisableOnDeath
	DelayedDisableOnDeath
)

var destroyOptionNames = map[DestroyOption]string{
	DestroyNone:           "none",
	DestroyOnDeath:        "destroy",
	DelayedDestroyOnDeath: "delayed_destroy",
	DisableOnDeath:        "disable",
	DelayedDisableOnDeath: "delayed_disable",
}

func (o DestroyOption) String() string {
	if name, ok := destroyOptionNames[o]; ok {
		return name
	}
	return fmt.Sprintf("DestroyOption(%d)", int(o))
}

// ParseDestroyOption maps a text name (as used in tunables and arena files)
// to its DestroyOption.
func ParseDestroyOption(s string) (DestroyOption, error) {
	for opt, name := range destroyOptionNames {
		if name == s {
			return opt, nil
		}
	}
	return DestroyNone, fmt.Errorf("unknown destroy option %q", s)
}

func (o DestroyOption) MarshalText() ([]byte, error) {
	name, ok := destroyOptionNames[o]
	if !ok {
		return nil, fmt.Errorf("unknown destroy option %d", int(o))
	}
	return []byte(name), nil
}

func (o *DestroyOption) UnmarshalText(text []byte) error {
	opt, err := ParseDestroyOption(string(text))
	if err != nil {
		return err
	}
	*o = opt
	return nil
}
