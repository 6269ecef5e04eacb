package where

import (
	"os"
	"testing"

	"github.com/galeriafora-cli/galeriafora/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestConfig(t *testing.T) {
	Convey("Given a custom config path override", t, func() {
		So(os.Setenv(EnvConfigPath, "custom_config_path"), ShouldBeNil)

		Convey("When resolving the config directory", func() {
			path := Config()

			Convey("Then the override should win", func() {
				So(path, ShouldEqual, "custom_config_path")

				exists, err := filesystem.API().DirExists(path)
				So(err, ShouldBeNil)
				So(exists, ShouldBeTrue)
			})
		})

		So(os.Unsetenv(EnvConfigPath), ShouldBeNil)
	})
}

func TestCatalog(t *testing.T) {
	Convey("Catalog path lives inside the config directory", t, func() {
		So(os.Setenv(EnvConfigPath, "catalog_home"), ShouldBeNil)
		So(Catalog(), ShouldEqual, "catalog_home/catalog.json")
		So(os.Unsetenv(EnvConfigPath), ShouldBeNil)
	})
}
