package utils

// set with -ldflags "-X github.com/bytearena/visgraph/common/utils.version=..."
var version = "dev"

func GetVersion() string {
	return version
}
