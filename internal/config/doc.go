// Package config manages user-level settings stored at ~/.luban/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the preferred package manager and the npm registry used for installs.
package config
