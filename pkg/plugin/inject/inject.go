// Package inject holds the workflow engine plugin contract and the plugin
// that makes the caller's gcloud credentials available inside task containers.
package inject

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperror "github.com/GBA-BI/drs-manifest/pkg/error"
	"github.com/GBA-BI/drs-manifest/pkg/log"
)

// Hook is implemented by task plugins. The host calls the three phases in
// order for every task, passing the result of one phase on to the task.
type Hook interface {
	// BeforeInputBind may add inputs (name to host path) before they are bound.
	BeforeInputBind(inputs map[string]string) (map[string]string, error)
	// BeforeCommandRun may rewrite the command; pathMap maps host input paths
	// to their container paths.
	BeforeCommandRun(command string, pathMap map[string]string) (string, error)
	// AfterOutputs may inspect or rewrite the task outputs.
	AfterOutputs(outputs map[string]string) (map[string]string, error)
}

const (
	CredentialsInputName = "gcp_credentials"
	credentialsFileName  = "application_default_credentials.json"
	injectScript         = "mkdir -p ~/.config && cp -r %s ~/.config"
)

// NewCredentialsInjector returns the plugin binding <homeDir>/.config/gcloud.
// An empty homeDir means the current user's home.
func NewCredentialsInjector(homeDir string, logger log.Logger) (*CredentialsInjector, error) {
	if homeDir == "" {
		var err error
		if homeDir, err = os.UserHomeDir(); err != nil {
			return nil, apperror.NewInternalError(err)
		}
	}
	return &CredentialsInjector{
		configDir: filepath.Join(homeDir, ".config", "gcloud"),
		logger:    logger,
	}, nil
}

type CredentialsInjector struct {
	configDir string
	logger    log.Logger
}

func (c *CredentialsInjector) BeforeInputBind(inputs map[string]string) (map[string]string, error) {
	info, err := os.Stat(filepath.Join(c.configDir, credentialsFileName))
	if err != nil || !info.Mode().IsRegular() {
		return nil, apperror.NewNotFoundError("GCP credentials", fmt.Sprintf(
			"in %s, please authenticate with GCP using 'gcloud auth application-default login'", c.configDir))
	}

	bound := make(map[string]string, len(inputs)+1)
	for k, v := range inputs {
		bound[k] = v
	}
	bound[CredentialsInputName] = c.configDir
	return bound, nil
}

func (c *CredentialsInjector) BeforeCommandRun(command string, pathMap map[string]string) (string, error) {
	hostPaths := make([]string, 0, len(pathMap))
	for hostPath := range pathMap {
		hostPaths = append(hostPaths, hostPath)
	}
	sort.Strings(hostPaths)

	for _, hostPath := range hostPaths {
		if strings.HasPrefix(hostPath, c.configDir) {
			c.logger.Infof("injecting GCP credentials from %s", pathMap[hostPath])
			return fmt.Sprintf(injectScript, pathMap[hostPath]) + "\n\n" + command, nil
		}
	}
	return "", apperror.NewNotFoundError("GCP credentials", "in input path map")
}

func (c *CredentialsInjector) AfterOutputs(outputs map[string]string) (map[string]string, error) {
	return outputs, nil
}

var _ Hook = (*CredentialsInjector)(nil)
