package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/rocketsoftware/find-java/java"
	"github.com/rocketsoftware/find-java/utils"
	"github.com/rocketsoftware/find-java/utils/log"
)

// Run locates a Java installation and prints the launcher path to stdout.
// Exit code 0 means a validated installation was found, 1 means none was.
func Run(productName, productTitle, productVersion string) {
	var (
		javaDir string
		javaw   bool
		verbose bool
	)
	pflag.StringVar(&javaDir, "javadir", "", "use the Java installation from this directory instead of probing")
	pflag.BoolVar(&javaw, "javaw", false, "probe for javaw.exe instead of java.exe")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "log diagnostic messages to stderr")
	pflag.Parse()

	productWorkDir := filepath.Join(os.TempDir(), productName)
	productLogFile := filepath.Join(productWorkDir, productName+".log")
	if err := utils.CreateProductWorkDir(productWorkDir); err != nil {
		log.Fatal(err)
	}
	logFile, err := utils.OpenOrCreateProductLogFile(productLogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	if verbose {
		log.SetOutput(io.MultiWriter(logFile, os.Stderr))
		log.SetDebug(true)
	} else {
		log.SetOutput(logFile)
	}
	log.Printf("starting %s %s with arguments %v", productTitle, productVersion, os.Args)
	log.Printf("current platform is OS=%q Architecture=%q", runtime.GOOS, runtime.GOARCH)

	finder := java.NewFinder()
	if javaw {
		finder.Launcher = "javaw.exe"
	}

	var installation *java.Installation
	if javaDir != "" {
		installation, err = finder.FindInDir(javaDir)
	} else {
		installation, err = finder.Find()
	}
	if err != nil {
		if errors.Cause(err) != java.ErrNotFound {
			log.Println(err)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Printf("java executable is %s found using %s", installation.Path, installation.Source)
	fmt.Println(installation.Path)
}
