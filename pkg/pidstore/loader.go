package pidstore

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rdm-protocol/rdm-go/pkg/messaging"
	"github.com/rdm-protocol/rdm-go/pkg/rdm"
	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"
)

// ESTA reserves this range for manufacturer specific PIDs.
const (
	ManufacturerPIDMin = 0x8000
	ManufacturerPIDMax = 0xffdf
)

// LoaderConfig configures a Loader.
type LoaderConfig struct {
	// ValidateConsistency rejects PIDs with a message descriptor that
	// cannot be inflated unambiguously.
	ValidateConsistency bool

	// Logger receives load diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultLoaderConfig returns a LoaderConfig with default values.
func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{ValidateConsistency: true}
}

// Loader builds RootPidStores from YAML sources.
type Loader struct {
	config LoaderConfig
	logger *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(config LoaderConfig) *Loader {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{config: config, logger: logger}
}

// ParsePidStore parses one YAML document with the default configuration.
func ParsePidStore(data []byte) (*RootPidStore, error) {
	return NewLoader(DefaultLoaderConfig()).LoadFromSources(data)
}

// LoadPidStore reads and parses one YAML document with the default
// configuration.
func LoadPidStore(r io.Reader) (*RootPidStore, error) {
	return NewLoader(DefaultLoaderConfig()).Load(r)
}

// LoadFromSources merges several YAML documents with the default
// configuration. See Loader.LoadFromSources.
func LoadFromSources(sources ...[]byte) (*RootPidStore, error) {
	return NewLoader(DefaultLoaderConfig()).LoadFromSources(sources...)
}

// Load reads and parses one YAML document.
func (l *Loader) Load(r io.Reader) (*RootPidStore, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading pid store: %w", err)
	}
	return l.LoadFromSources(data)
}

// LoadFromSources merges several YAML documents into one store. ESTA PIDs
// from all sources share one store; manufacturer entries with the same ID in
// different sources are merged. Duplicate PIDs fail the whole load.
func (l *Loader) LoadFromSources(sources ...[]byte) (*RootPidStore, error) {
	if len(sources) == 0 {
		return nil, ErrEmptyStore
	}

	var merged RawPidStore
	manufacturerIndex := make(map[uint16]int)
	hasher := blake3.New()

	for i, data := range sources {
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, fmt.Errorf("source %d: %w", i, ErrEmptyStore)
		}
		var raw RawPidStore
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing source %d: %w", i, err)
		}
		if len(raw.PIDs) == 0 && len(raw.Manufacturers) == 0 {
			return nil, fmt.Errorf("source %d: %w", i, ErrEmptyStore)
		}
		_, _ = hasher.Write(data)

		merged.Version = max(merged.Version, raw.Version)
		merged.PIDs = append(merged.PIDs, raw.PIDs...)

		seen := make(map[uint16]bool)
		for _, m := range raw.Manufacturers {
			if seen[m.ID] {
				return nil, fmt.Errorf("%w: %#04x (%s) in source %d", ErrDuplicateManufacturer, m.ID, m.Name, i)
			}
			seen[m.ID] = true
			if idx, ok := manufacturerIndex[m.ID]; ok {
				merged.Manufacturers[idx].PIDs = append(merged.Manufacturers[idx].PIDs, m.PIDs...)
				continue
			}
			manufacturerIndex[m.ID] = len(merged.Manufacturers)
			merged.Manufacturers = append(merged.Manufacturers, m)
		}
	}
	root, err := l.build(&merged)
	if err != nil {
		return nil, err
	}
	copy(root.digest[:], hasher.Sum(nil))
	return root, nil
}

func (l *Loader) build(raw *RawPidStore) (*RootPidStore, error) {
	esta, err := l.buildPids(raw.PIDs, func(v uint16) bool {
		return v < ManufacturerPIDMin || v > ManufacturerPIDMax
	})
	if err != nil {
		return nil, fmt.Errorf("esta pids: %w", err)
	}

	manufacturers := make(map[uint16]*PidStore)
	for _, m := range raw.Manufacturers {
		pids, err := l.buildPids(m.PIDs, func(v uint16) bool {
			return v >= ManufacturerPIDMin && v <= ManufacturerPIDMax
		})
		if err != nil {
			return nil, fmt.Errorf("manufacturer %#04x (%s): %w", m.ID, m.Name, err)
		}
		if len(pids) == 0 {
			continue
		}
		manufacturers[m.ID] = NewPidStore(pids)
	}

	root := NewRootPidStore(NewPidStore(esta), manufacturers, raw.Version)
	l.logger.Debug("pid store loaded",
		slog.Uint64("version", raw.Version),
		slog.Int("esta_pids", root.ESTAStore().PIDCount()),
		slog.Int("manufacturers", len(manufacturers)))
	return root, nil
}

func (l *Loader) buildPids(raw []RawPid, allowed func(uint16) bool) ([]*PidDescriptor, error) {
	seenValues := make(map[uint16]string, len(raw))
	seenNames := make(map[string]bool, len(raw))
	pids := make([]*PidDescriptor, 0, len(raw))

	for i := range raw {
		p := &raw[i]
		if p.Name == "" {
			return nil, fmt.Errorf("%w: pid %d has no name", ErrInvalidField, p.Value)
		}
		if other, ok := seenValues[p.Value]; ok {
			return nil, fmt.Errorf("%w: value %#04x used by %s and %s", ErrDuplicatePID, p.Value, other, p.Name)
		}
		key := strings.ToUpper(p.Name)
		if seenNames[key] {
			return nil, fmt.Errorf("%w: name %s", ErrDuplicatePID, p.Name)
		}
		if !allowed(p.Value) {
			return nil, fmt.Errorf("%w: %s (%#04x)", ErrPIDOutOfRange, p.Name, p.Value)
		}
		seenValues[p.Value] = p.Name
		seenNames[key] = true

		pid, err := l.buildPid(p)
		if err != nil {
			return nil, fmt.Errorf("pid %s: %w", p.Name, err)
		}
		l.logger.Debug("loaded pid", slog.String("name", p.Name), slog.Int("value", int(p.Value)))
		pids = append(pids, pid)
	}
	return pids, nil
}

func (l *Loader) buildPid(p *RawPid) (*PidDescriptor, error) {
	getRange, err := ParseSubDeviceValidator(p.GetSubDeviceRange)
	if err != nil {
		return nil, err
	}
	setRange, err := ParseSubDeviceValidator(p.SetSubDeviceRange)
	if err != nil {
		return nil, err
	}

	var frames Frames
	targets := []struct {
		suffix string
		raw    *RawMessage
		dst    **messaging.Descriptor
	}{
		{"get_request", p.GetRequest, &frames.GetRequest},
		{"get_response", p.GetResponse, &frames.GetResponse},
		{"set_request", p.SetRequest, &frames.SetRequest},
		{"set_response", p.SetResponse, &frames.SetResponse},
	}
	for _, t := range targets {
		d, err := buildMessage(p.Name+" "+t.suffix, t.raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.suffix, err)
		}
		if d != nil && l.config.ValidateConsistency {
			if err := rdm.Check(d); err != nil {
				return nil, err
			}
		}
		*t.dst = d
	}

	return NewPidDescriptor(p.Name, p.Value, frames, getRange, setRange), nil
}
