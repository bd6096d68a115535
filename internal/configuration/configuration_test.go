package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	config "github.com/emilioroldan/iban-phones/internal/configuration"
)

func TestConfiguration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Configuration Suite")
}

var _ = Describe("Load", func() {
	Context("with no config file", func() {
		It("should return the defaults", func() {
			cfg, err := config.Load("")
			Expect(err).ToNot(HaveOccurred())

			Expect(cfg.AppName).To(Equal("iban-phones"))
			Expect(cfg.Log.Level).To(Equal("info"))
			Expect(cfg.Log.Format).To(Equal("text"))
			Expect(cfg.Server.Address).To(Equal(":8080"))
			Expect(cfg.Data.RegistryFile).To(Equal("data/lista-psri-es.csv"))
			Expect(cfg.Scan.ChunkSize).To(Equal(10000))
		})
	})

	Context("with a TOML config file", func() {
		It("should override the defaults", func() {
			path := filepath.Join(GinkgoT().TempDir(), "config.toml")
			content := "[log]\nlevel = \"debug\"\n\n[scan]\nchunk_size = 2500\n\n[data]\nregistry_file = \"/srv/lista-psri-es.csv\"\n"
			Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

			cfg, err := config.Load(path)
			Expect(err).ToNot(HaveOccurred())

			Expect(cfg.Log.Level).To(Equal("debug"))
			Expect(cfg.Scan.ChunkSize).To(Equal(2500))
			Expect(cfg.Data.RegistryFile).To(Equal("/srv/lista-psri-es.csv"))
			// Untouched keys keep their defaults.
			Expect(cfg.Server.Address).To(Equal(":8080"))
		})
	})

	Context("with environment variable overrides", func() {
		AfterEach(func() {
			os.Unsetenv("APP_LOG__LEVEL")
			os.Unsetenv("APP_SERVER__ADDRESS")
		})

		It("should map APP_ variables onto nested keys", func() {
			Expect(os.Setenv("APP_LOG__LEVEL", "warn")).To(Succeed())
			Expect(os.Setenv("APP_SERVER__ADDRESS", ":9090")).To(Succeed())

			cfg, err := config.Load("")
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.Log.Level).To(Equal("warn"))
			Expect(cfg.Server.Address).To(Equal(":9090"))
		})
	})

	Context("with invalid values", func() {
		It("should reject an unknown log level", func() {
			path := filepath.Join(GinkgoT().TempDir(), "config.toml")
			Expect(os.WriteFile(path, []byte("[log]\nlevel = \"loud\"\n"), 0o644)).To(Succeed())

			_, err := config.Load(path)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("log level"))
		})

		It("should reject a non-positive chunk size", func() {
			path := filepath.Join(GinkgoT().TempDir(), "config.toml")
			Expect(os.WriteFile(path, []byte("[scan]\nchunk_size = 0\n"), 0o644)).To(Succeed())

			_, err := config.Load(path)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("chunk_size"))
		})

		It("should reject an empty registry file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "config.toml")
			Expect(os.WriteFile(path, []byte("[data]\nregistry_file = \"\"\n"), 0o644)).To(Succeed())

			_, err := config.Load(path)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("registry_file"))
		})
	})
})
