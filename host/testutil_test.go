package host

// fakeProvider implements Provider with fixed fixture data.
type fakeProvider struct {
	name    string
	enabled bool
	symbols []Symbol
	units   map[string]string
	locs    map[string]Location
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Enabled() bool { return f.enabled }

func (f *fakeProvider) Symbols() []string {
	out := make([]string, 0, len(f.symbols))
	for _, s := range f.symbols {
		out = append(out, s.Name)
	}
	return out
}

func (f *fakeProvider) KindOf(name string) (Kind, bool) {
	for _, s := range f.symbols {
		if s.Name == name {
			return s.Kind, true
		}
	}
	return KindUnknown, false
}

func (f *fakeProvider) Resolve(name string, kind Kind) (Location, bool) {
	loc, ok := f.locs[name]
	if !ok {
		return Location{}, false
	}
	if kind != KindUnknown {
		if k, known := f.KindOf(name); !known || k != kind {
			return Location{}, false
		}
	}
	return loc, true
}

func (f *fakeProvider) Unit(id string) (string, error) {
	text, ok := f.units[id]
	if !ok {
		return "", ErrUnitNotFound
	}
	return text, nil
}
