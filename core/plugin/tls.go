package plugin

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"asset-pipeline/core/apperror"
)

// TLSFiles are the certificate and key the dev server should serve with.
type TLSFiles struct {
	Key  string `json:"key" yaml:"key"`
	Cert string `json:"cert" yaml:"cert"`
}

// ServerTLS is the host and certificate pair for an HTTPS dev server.
type ServerTLS struct {
	Host  string
	Files TLSFiles
}

// EnvironmentServerTLS reads VITE_DEV_SERVER_KEY and VITE_DEV_SERVER_CERT. It
// returns nil when neither is set and fails when the files are missing or APP_URL
// has no host.
func EnvironmentServerTLS(env map[string]string) (*ServerTLS, error) {
	key, cert := env["VITE_DEV_SERVER_KEY"], env["VITE_DEV_SERVER_CERT"]
	if key == "" && cert == "" {
		return nil, nil
	}

	if !fileExists(key) || !fileExists(cert) {
		return nil, apperror.Configuration(
			"Unable to find the certificate files specified in your environment. Ensure you have correctly configured VITE_DEV_SERVER_KEY: [%s] and VITE_DEV_SERVER_CERT: [%s].",
			key, cert)
	}

	host := hostFromURL(env["APP_URL"])
	if host == "" {
		return nil, apperror.Configuration("Unable to determine the host from the environment's APP_URL: [%s].", env["APP_URL"])
	}

	return &ServerTLS{Host: host, Files: TLSFiles{Key: key, Cert: cert}}, nil
}

// DevelopmentServerTLS looks for Herd or Valet certificates under homeDir for the
// site named after workDir (or the explicit host).
func DevelopmentServerTLS(detect TLSDetection, homeDir, workDir string) (*ServerTLS, error) {
	if detect.Mode == TLSDisabled {
		return nil, nil
	}

	configPath := developmentConfigPath(homeDir)
	if configPath == "" {
		if detect.Mode == TLSAuto {
			return nil, nil
		}
		return nil, apperror.Configuration("Unable to find the Herd or Valet configuration directory. Please check they are correctly installed.")
	}

	host := detect.Host
	if detect.Mode != TLSHost {
		tld, err := developmentTLD(configPath)
		if err != nil {
			return nil, err
		}
		host = filepath.Base(workDir) + "." + tld
	}

	certDir := filepath.Join(configPath, "Certificates")
	files := TLSFiles{
		Key:  filepath.Join(certDir, host+".key"),
		Cert: filepath.Join(certDir, host+".crt"),
	}

	if !fileExists(files.Key) || !fileExists(files.Cert) {
		if detect.Mode == TLSAuto {
			return nil, nil
		}
		return nil, apperror.Configuration(
			"Unable to find certificate files for your host [%s] in the [%s] directory. Ensure you have secured the site via the Herd UI or run `valet secure`.",
			host, certDir)
	}

	return &ServerTLS{Host: host, Files: files}, nil
}

func developmentConfigPath(homeDir string) string {
	candidates := []string{
		filepath.Join(homeDir, "Library", "Application Support", "Herd", "config", "valet"),
		filepath.Join(homeDir, ".config", "valet"),
	}
	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

func developmentTLD(configPath string) (string, error) {
	configFile := filepath.Join(configPath, "config.json")
	data, err := os.ReadFile(configFile)
	if err != nil {
		return "", apperror.Configuration("Unable to find the configuration file [%s].", configFile)
	}

	var cfg struct {
		TLD string `json:"tld"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", configFile, err)
	}
	return cfg.TLD, nil
}

func hostFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
