package bootinfo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/srlehn/fbcon/internal/errors"
)

// Type is the firmware memory region type. Values follow the Limine boot
// protocol.
type Type uint64

const (
	TypeUsable Type = iota
	TypeReserved
	TypeACPIReclaimable
	TypeACPINVS
	TypeBadMemory
	TypeBootloaderReclaimable
	TypeKernelAndModules
	TypeFramebuffer
)

var typeNames = [...]string{
	TypeUsable:                `USABLE`,
	TypeReserved:              `RESERVED`,
	TypeACPIReclaimable:       `ACPI_RECLAIMABLE`,
	TypeACPINVS:               `ACPI_NVS`,
	TypeBadMemory:             `BAD_MEMORY`,
	TypeBootloaderReclaimable: `BOOTLOADER_RECLAIMABLE`,
	TypeKernelAndModules:      `KERNEL_AND_MODULES`,
	TypeFramebuffer:           `FRAMEBUFFER`,
}

// String returns the upper case region name, "UNKNOWN" for values outside
// the protocol.
func (t Type) String() string {
	if t < Type(len(typeNames)) {
		return typeNames[t]
	}
	return `UNKNOWN`
}

// Known reports whether t is one of the protocol's region types.
func (t Type) Known() bool { return t < Type(len(typeNames)) }

// ParseType accepts a region name in any case style ("usable",
// "BadMemory", "acpi-nvs") or a decimal number.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 0, 64); err == nil {
		return Type(n), nil
	}
	name := strcase.ToScreamingSnake(s)
	for t, n := range typeNames {
		if n == name {
			return Type(t), nil
		}
	}
	return 0, errors.Errorf(`unknown memory region type %q`, s)
}

func (t *Type) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.Errorf(`line %d: memory region type must be a scalar`, n.Line)
	}
	v, err := ParseType(n.Value)
	if err != nil {
		return errors.New(fmt.Errorf(`line %d: %w`, n.Line, err))
	}
	*t = v
	return nil
}

func (t Type) MarshalYAML() (any, error) {
	if !t.Known() {
		return uint64(t), nil
	}
	return t.String(), nil
}

// MemoryModel is the framebuffer pixel memory model.
type MemoryModel uint8

const MemoryModelRGB MemoryModel = 1

func (m MemoryModel) String() string {
	if m == MemoryModelRGB {
		return `RGB`
	}
	return `Unknown`
}

func (m *MemoryModel) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.Errorf(`line %d: memory model must be a scalar`, n.Line)
	}
	if strings.EqualFold(n.Value, `rgb`) {
		*m = MemoryModelRGB
		return nil
	}
	v, err := strconv.ParseUint(n.Value, 0, 8)
	if err != nil {
		return errors.Errorf(`line %d: invalid memory model %q`, n.Line, n.Value)
	}
	*m = MemoryModel(v)
	return nil
}

func (m MemoryModel) MarshalYAML() (any, error) {
	if m == MemoryModelRGB {
		return `rgb`, nil
	}
	return uint8(m), nil
}

// ParseAddress reads a physical address in Go literal syntax: decimal,
// 0x hex, 0o octal or 0b binary, with optional underscores.
func ParseAddress(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, errors.New(err)
	}
	return v, nil
}
