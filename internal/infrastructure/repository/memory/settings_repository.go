package memory

import "context"

type SettingsRepository struct {
	ds *Dataset
}

func NewSettingsRepository(ds *Dataset) *SettingsRepository {
	return &SettingsRepository{ds: ds}
}

func (r *SettingsRepository) Get(_ context.Context, community, name string) (string, bool, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	values, ok := r.ds.settings[community]
	if !ok {
		return "", false, nil
	}
	value, ok := values[name]

	return value, ok, nil
}

func (r *SettingsRepository) Set(_ context.Context, community, name, value string) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	if _, ok := r.ds.settings[community]; !ok {
		r.ds.settings[community] = make(map[string]string)
	}
	r.ds.settings[community][name] = value

	return nil
}

func (r *SettingsRepository) Delete(_ context.Context, community, name string) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	if values, ok := r.ds.settings[community]; ok {
		delete(values, name)
	}

	return nil
}
