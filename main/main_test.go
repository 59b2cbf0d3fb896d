package main_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

func runOmnihash(stdin string, args ...string) *gexec.Session {
	cmd := exec.Command(omnihashBinPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+GinkgoT().TempDir())
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	session, err := gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
	Expect(err).ToNot(HaveOccurred())
	return session
}

var _ = Describe("omnihash", func() {
	It("hashes a string argument with every algorithm", func() {
		session := runOmnihash("", "hashme")
		Eventually(session).Should(gexec.Exit(0))

		Expect(session.Out).To(gbytes.Say(`LENGTH:\s+6\n`))
		Expect(session.Out).To(gbytes.Say("fb78992e561929a6967d5328f49413fa99048d06"))
		Expect(session.Err).To(gbytes.Say("Hashing string hashme.."))
	})

	It("hashes a file argument using its size", func() {
		filePath := filepath.Join(GinkgoT().TempDir(), "file.txt")
		Expect(os.WriteFile(filePath, []byte("hashme"), 0600)).To(Succeed())

		session := runOmnihash("", filePath)
		Eventually(session).Should(gexec.Exit(0))

		Expect(session.Out).To(gbytes.Say("fb78992e561929a6967d5328f49413fa99048d06"))
		Expect(session.Err).To(gbytes.Say("Hashing file"))
	})

	It("hashes arguments as strings when asked to", func() {
		filePath := filepath.Join(GinkgoT().TempDir(), "file.txt")
		Expect(os.WriteFile(filePath, []byte("file content"), 0600)).To(Succeed())

		session := runOmnihash("", "-s", filePath)
		Eventually(session).Should(gexec.Exit(0))

		Expect(session.Err).To(gbytes.Say("Hashing string"))
	})

	It("processes the remaining items when one fails", func() {
		dir := GinkgoT().TempDir()

		session := runOmnihash("", dir, "hashme")
		Eventually(session).Should(gexec.Exit(0))

		Expect(session.Err).To(gbytes.Say("Skipping directory"))
		Expect(session.Out).To(gbytes.Say("fb78992e561929a6967d5328f49413fa99048d06"))
	})

	It("hashes standard input when no arguments are given", func() {
		session := runOmnihash("hashme")
		Eventually(session).Should(gexec.Exit(0))

		Expect(session.Err).To(gbytes.Say("Hashing standard input.."))
		Expect(session.Out).To(gbytes.Say(`LENGTH:\s+6\n`))
		Expect(session.Out).To(gbytes.Say("fb78992e561929a6967d5328f49413fa99048d06"))
	})

	It("restricts algorithms with include filters", func() {
		session := runOmnihash("", "-f", "sha2", "Hi")
		Eventually(session).Should(gexec.Exit(0))

		output := string(session.Out.Contents())
		Expect(output).To(ContainSubstring("SHA224:"))
		Expect(output).To(ContainSubstring("SHA256:"))
		Expect(output).ToNot(ContainSubstring("MD5:"))
		Expect(output).ToNot(ContainSubstring("LENGTH:"))
	})

	It("skips algorithms with exclude filters", func() {
		session := runOmnihash("", "-x", "sha", "-x", "blake", "hashme")
		Eventually(session).Should(gexec.Exit(0))

		output := string(session.Out.Contents())
		Expect(output).To(ContainSubstring("MD5:"))
		Expect(output).ToNot(ContainSubstring("SHA256:"))
		Expect(output).ToNot(ContainSubstring("BLAKE3:"))
	})

	It("includes CRC checksums only when asked", func() {
		session := runOmnihash("", "hashme")
		Eventually(session).Should(gexec.Exit(0))
		Expect(string(session.Out.Contents())).ToNot(ContainSubstring("CRC-32:"))

		session = runOmnihash("", "-c", "hashme")
		Eventually(session).Should(gexec.Exit(0))
		Expect(string(session.Out.Contents())).To(ContainSubstring("CRC-32:"))
	})

	It("reports when a match is not found", func() {
		session := runOmnihash("", "-m", "zzzzzzzzzz", "hashme")
		Eventually(session).Should(gexec.Exit(0))

		Expect(session.Err).To(gbytes.Say("No matches found!"))
	})

	It("reports only matching digests", func() {
		session := runOmnihash("", "-m", "fb78992e", "hashme")
		Eventually(session).Should(gexec.Exit(0))

		output := string(session.Out.Contents())
		Expect(output).To(ContainSubstring("SHA1:"))
		Expect(output).ToNot(ContainSubstring("MD5:"))
	})

	It("renders JSON output as an array of items", func() {
		session := runOmnihash("", "-j", "hashme", "andme")
		Eventually(session).Should(gexec.Exit(0))

		var items []map[string]string
		Expect(json.Unmarshal(session.Out.Contents(), &items)).To(Succeed())

		Expect(items).To(HaveLen(2))
		Expect(items[0]["NAME"]).To(Equal("hashme"))
		Expect(items[0]["SHA1"]).To(Equal("fb78992e561929a6967d5328f49413fa99048d06"))
		Expect(items[1]["NAME"]).To(Equal("andme"))
	})

	It("prints the version and exits", func() {
		session := runOmnihash("", "-v")
		Eventually(session).Should(gexec.Exit(0))

		Expect(session.Out).To(gbytes.Say(`\d+\.\d+\.\d+`))
	})

	It("prints help when there is nothing to hash", func() {
		session := runOmnihash("")
		Eventually(session).Should(gexec.Exit(0))

		Expect(session.Out).To(gbytes.Say("HASHME"))
	})

	It("picks up defaults from the config file", func() {
		home := GinkgoT().TempDir()
		configPath := filepath.Join(home, ".omnihash.yml")
		Expect(os.WriteFile(configPath, []byte("checksums: true\n"), 0600)).To(Succeed())

		cmd := exec.Command(omnihashBinPath, "hashme")
		cmd.Env = append(os.Environ(), "HOME="+home)

		session, err := gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())
		Eventually(session).Should(gexec.Exit(0))

		Expect(string(session.Out.Contents())).To(ContainSubstring("CRC-32:"))
	})
})
