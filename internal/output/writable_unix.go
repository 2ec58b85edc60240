//go:build unix

package output

import "golang.org/x/sys/unix"

// checkWritable asks the kernel whether the caller may create files in dir,
// so permission problems surface before anything is rendered to disk.
func checkWritable(dir string) error {
	return unix.Access(dir, unix.W_OK|unix.X_OK)
}
