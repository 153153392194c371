package awscloud

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go/aws/defaults"
	"gopkg.in/ini.v1"
)

// ListProfiles returns the credential profiles available on this machine,
// read from the AWS shared credentials and config files.
func ListProfiles() ([]string, error) {
	credsPath := os.Getenv("AWS_SHARED_CREDENTIALS_FILE")
	if credsPath == "" {
		credsPath = defaults.SharedCredentialsFilename()
	}

	configPath := os.Getenv("AWS_CONFIG_FILE")
	if configPath == "" {
		configPath = defaults.SharedConfigFilename()
	}

	profiles := make(map[string]struct{})

	if _, err := os.Stat(credsPath); err == nil {
		credsFile, err := ini.Load(credsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load credentials file: %w", err)
		}
		for _, section := range credsFile.Sections() {
			if section.Name() != ini.DefaultSection {
				profiles[section.Name()] = struct{}{}
			}
		}
	}

	if _, err := os.Stat(configPath); err == nil {
		configFile, err := ini.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		for _, section := range configFile.Sections() {
			if section.Name() != ini.DefaultSection {
				profiles[strings.TrimPrefix(section.Name(), "profile ")] = struct{}{}
			}
		}
	}

	result := make([]string, 0, len(profiles))
	for profile := range profiles {
		result = append(result, profile)
	}
	sort.Strings(result)

	return result, nil
}
