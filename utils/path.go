package utils

import (
	"path"

	"github.com/kardianos/osext"
	"github.com/pkg/errors"
)

// GetAbsoluteDir resolves relative against the directory of the running
// executable.
func GetAbsoluteDir(relative string) (string, error) {
	exfolder, err := osext.ExecutableFolder()
	if err != nil {
		return "", errors.Wrapf(err, "cannot get absolute dir for %s", relative)
	}

	return path.Join(exfolder, relative), nil
}
