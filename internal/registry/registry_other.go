//go:build !windows

package registry

func GetStringValue(fullPath, valueName string) (string, error) {
	return "", ErrUnsupported
}
