// Package config manages the user preferences file for the catalog tool.
//
// Preferences are stored as YAML in a platform-appropriate location:
//   - Linux: $XDG_CONFIG_HOME/catalog/config.yaml or $HOME/.config/catalog/config.yaml
//   - macOS: $HOME/.config/catalog/config.yaml
//   - Windows: %LOCALAPPDATA%\catalog\config.yaml
//
// A missing file is not an error; Load returns defaults (page size 6,
// 500ms search debounce, list view, en-US price formatting). Command-line
// flags override whatever the file says.
//
// # Usage Example
//
//	path, err := config.GetConfigPath()
//	if err != nil {
//	    return err
//	}
//	prefs, err := config.LoadFrom(path)
//	if err != nil {
//	    return err
//	}
//	prefs.PageSize = 10
//	if err := prefs.SaveTo(path); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// Load uses sync.Once so the file is read once per process. Writes go through
// a temp file and rename under a mutex.
package config
