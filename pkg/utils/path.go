package utils

import "os"

// CreateFolder creates every given directory if it does not exist yet.
func CreateFolder(folders ...string) error {
	for _, folder := range folders {
		if err := os.MkdirAll(folder, 0755); err != nil {
			return err
		}
	}
	return nil
}
