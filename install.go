package skills_installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	KB int64 = 1 << (10 * (iota + 1))
	MB
	GB
	TB
)

type (
	// InstallFile is an augmented os.FileInfo struct with both the source
	// path inside the data payload and the absolute target path, as well as
	// a flag indicating whether the file has been copied to the target or
	// not.
	InstallFile struct {
		os.FileInfo
		Path      string
		Target    string
		installed bool
	}
	// InstallStatus is a message struct that gets passed around at various
	// times in the installation process. All fields are optional and contain
	// the current file, whether the installer as a whole is finished or not,
	// or whether it's been aborted and rolled back.
	InstallStatus struct {
		File    *InstallFile
		Done    bool
		Aborted bool
	}
	// Installer represents the bundled skill payload and a target project
	// directory to copy it into. It holds the file list, sizes, and status,
	// as well as message channels for abort and its confirmation, and a
	// status channel.
	Installer struct {
		Target              string
		Done                bool
		config              *Config
		err                 error
		aborted             bool
		totalSize           int64
		installedSize       int64
		files               []*InstallFile
		statusChannel       chan InstallStatus
		abortChannel        chan bool
		abortConfirmChannel chan bool
		actionLock          sync.Mutex
		progressFunction    func(InstallStatus)
	}
)

// NewInstaller creates a new Installer. You will still need to set the target
// path after initialization:
//
//	installer := NewInstaller(config)
//	/* ... some other stuff happens ... */
//	err := installer.CheckSetTargetDir("/some/project/path")
//	/* and go: */
//	installer.StartInstall()
//
// Alternatively you can just use NewInstallerTo() and set the target
// directly:
//
//	installer := NewInstallerTo("/some/project/path", config)
//	installer.StartInstall()
//	/* some watch loop with 'installer.Status()' */
func NewInstaller(config *Config) *Installer { return NewInstallerTo("", config) }

// NewInstallerTo creates a new installer with a target path.
func NewInstallerTo(target string, config *Config) *Installer {
	return &Installer{
		Target:              target,
		config:              config,
		totalSize:           DataSize(),
		statusChannel:       make(chan InstallStatus, 1),
		abortChannel:        make(chan bool, 1),
		abortConfirmChannel: make(chan bool, 1),
		progressFunction:    func(status InstallStatus) {},
	}
}

// StartInstall runs the installer in a separate goroutine and returns
// immediately. Use Status() or WaitForDone() to get updates about the
// progress.
func (i *Installer) StartInstall() { go i.install() }

// install copies the payload into the target directory. The payload's
// directory layout is mirrored below '<target>/<claude_dir>/'. Existing
// files are overwritten. A copy error aborts the remaining files; already
// copied files are left in place, since rerunning the install overwrites
// the same destinations anyway.
func (i *Installer) install() {
	i.Done = false
	i.err = nil
	boxFiles, err := ListDataDir("")
	if err != nil {
		i.fail(err)
		return
	}
	i.actionLock.Lock()
	defer i.actionLock.Unlock()
	i.files = make([]*InstallFile, 0, len(boxFiles))
	for _, file := range boxFiles {
		target := filepath.Join(i.Target, i.config.ClaudeDir, file.path)
		i.files = append(i.files, &InstallFile{file.info, file.path, target, false})
	}
	for _, file := range i.files {
		select {
		case <-i.abortChannel:
			i.Done = false
			i.abortConfirmChannel <- true
			return
		default:
			status := InstallStatus{File: file}
			i.setStatus(status)
			i.progressFunction(status)
			if file.IsDir() {
				if err = os.MkdirAll(file.Target, 0755); err != nil {
					i.fail(err)
					return
				}
			} else {
				if err = UnpackDataFile(file.Path, file.Target); err != nil {
					i.fail(err)
					return
				}
				i.installedSize += file.Size()
			}
			file.installed = true
			i.setStatus(InstallStatus{File: file})
		}
	}
	i.Done = true
	i.setStatus(InstallStatus{Done: true})
}

// fail records the error and releases anyone blocked in WaitForDone().
func (i *Installer) fail(err error) {
	logrus.WithError(err).Error("install failed")
	i.err = err
	i.setStatus(InstallStatus{Done: true})
}

// Error returns the error that stopped the installation, if any.
func (i *Installer) Error() error { return i.err }

// Abort can be called to stop the installer. The installer will usually not
// stop immediately, but finish copying the current file.
//
// Use Rollback() instead of Abort() if you want all files and directories
// rolled back and deleted as well.
func (i *Installer) Abort() {
	i.abortChannel <- true
	select {
	case <-i.abortConfirmChannel:
	case <-time.After(1 * time.Second):
	}
}

// Rollback can be used to abort and roll back (i.e. delete) the files and
// directories that have been installed so far. It will not delete files that
// haven't been written by the installer, but will delete any file that was
// overwritten by it.
//
// Rollback implicitly calls Abort().
func (i *Installer) Rollback() {
	i.Abort()
	i.actionLock.Lock()
	defer i.actionLock.Unlock()
	// Do not os.RemoveAll(i.Target)! That could easily delete files and
	// folders not created by the installer.
	for p := len(i.files) - 1; p >= 0; p-- {
		if i.files[p].installed {
			err := os.Remove(i.files[p].Target)
			if err != nil {
				logrus.WithField("file", i.files[p].Target).Warn("error deleting file")
			}
			i.files[p].installed = false
			if !i.files[p].IsDir() {
				i.installedSize -= i.files[p].Size()
			}
			i.setStatus(InstallStatus{File: i.files[p]})
		}
	}
	i.Done = true
	i.aborted = true
	i.setStatus(InstallStatus{Aborted: true})
}

// Aborted reports whether the installation was rolled back.
func (i *Installer) Aborted() bool { return i.aborted }

// setStatus is a non-blocking write to the status channel. If no-one is
// listening through Status() then it will simply do nothing and return.
func (i *Installer) setStatus(status InstallStatus) {
	select {
	case i.statusChannel <- status:
	case <-time.After(1 * time.Second):
	}
}

// Status returns the current installer status as an InstallStatus object.
func (i *Installer) Status() InstallStatus {
	select {
	case status := <-i.statusChannel:
		return status
	case <-time.After(1 * time.Second):
		return InstallStatus{}
	}
}

// CheckSetTargetDir checks that the given directory exists, is writable and
// has enough free space for the payload, and sets it as the install target.
// The returned error messages are string keys into the translator's language
// files.
func (i *Installer) CheckSetTargetDir(dirName string) error {
	dirInfo, err := os.Stat(dirName)
	if err != nil || !dirInfo.IsDir() {
		return errors.New("err_target_not_found")
	}
	if !osFileWriteAccess(dirName) {
		return errors.New("err_target_not_writable")
	}
	if space := osDiskSpace(dirName); space >= 0 && space < i.totalSize {
		return errors.New("err_target_no_space")
	}
	i.Target = dirName
	return nil
}

// SkillPath returns the directory the skill reference tree is installed to.
func (i *Installer) SkillPath() string {
	return filepath.Join(i.Target, i.config.ClaudeDir, i.config.SkillsDir, i.config.SkillName)
}

// CommandPath returns the path the command file is installed to.
func (i *Installer) CommandPath() string {
	return filepath.Join(i.Target, i.config.ClaudeDir, i.config.CommandsDir, i.config.SkillName+".md")
}

// NextFile returns the file that the installer will install next, or the one
// that is currently being installed.
func (i *Installer) NextFile() *InstallFile {
	for _, file := range i.files {
		if !file.installed {
			return file
		}
	}
	return nil
}

func (i *Installer) SetProgressFunction(function func(InstallStatus)) {
	i.progressFunction = function
}

// Progress returns the size ratio between already installed files and all
// files. The result is a float between 0.0 and 1.0, inclusive.
func (i *Installer) Progress() float64 {
	return float64(i.installedSize) / float64(i.totalSize)
}

// Size returns the bytes that have been copied so far or should be copied in
// total.
func (i *Installer) Size() int64 {
	if i.Done {
		return i.totalSize
	} else {
		return i.installedSize
	}
}

// SizeString returns a human-readable version of Size(), appending a size
// suffix, as needed.
func (i *Installer) SizeString() string {
	size := i.Size()
	switch {
	case size < KB:
		return fmt.Sprintf("%dB", size)
	case size < MB:
		return fmt.Sprintf("%.2fKB", float64(size)/float64(KB))
	case size < GB:
		return fmt.Sprintf("%.2fMB", float64(size)/float64(MB))
	case size < TB:
		return fmt.Sprintf("%.2fGB", float64(size)/float64(GB))
	default:
		return fmt.Sprintf("%.2fTB", float64(size)/float64(TB))
	}
}

// WaitForDone returns only after the installer has finished installing (or
// rolling back, or failing).
func (i *Installer) WaitForDone() {
	for {
		if status := <-i.statusChannel; status.Done || status.Aborted {
			return
		}
	}
}
