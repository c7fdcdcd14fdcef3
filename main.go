package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/illarion/saltcrypt/cmd"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "enc":
		runEnc(os.Args[2:])
	case "dec":
		runDec(os.Args[2:])
	case "help", "-h", "--help":
		if len(os.Args) <= 2 {
			printUsage()
			return
		}
		printCommandHelp(os.Args[2])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runEnc(args []string) {
	fs := flag.NewFlagSet("enc", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Log derivation parameters (salt, IV) to stderr")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Encrypt(fs.Args(), *verbose)
}

func runDec(args []string) {
	fs := flag.NewFlagSet("dec", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Log derivation parameters (salt, IV) to stderr")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Decrypt(fs.Args(), *verbose)
}

func printUsage() {
	fmt.Println("saltcrypt - openssl-compatible password-based string encryption")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  saltcrypt <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  enc         Encrypt text to base64 ciphertext")
	fmt.Println("  dec         Decrypt base64 ciphertext back to text")
	fmt.Println("  help        Show help for a command")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  saltcrypt enc 'hello world'         # Encrypt a string")
	fmt.Println("  echo -n secret | saltcrypt enc      # Encrypt stdin")
	fmt.Println("  saltcrypt dec 'U2FsdGVkX1...'       # Decrypt a string")
	fmt.Println()
	fmt.Println("The password is read from the SALTCRYPT_PASSWORD environment")
	fmt.Println("variable when set, otherwise prompted for without echo.")
	fmt.Println()
	fmt.Println("Use 'saltcrypt help <command>' for more information about a command.")
}

func printCommandHelp(command string) {
	switch command {
	case "enc":
		fmt.Println("saltcrypt enc [-v] [<text>]")
		fmt.Println()
		fmt.Println("Encrypts the given text (or stdin when no argument is given) and")
		fmt.Println("prints the base64 ciphertext to stdout. A fresh random salt is used")
		fmt.Println("for every invocation, so output differs between identical runs.")
		fmt.Println()
		fmt.Println("The output decrypts with:")
		fmt.Println("  openssl enc -d -aes-256-cbc -md md5 -a -pass pass:<password>")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  -v    Log derivation parameters (salt, IV) to stderr")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  saltcrypt enc 'hello world'")
		fmt.Println("  cat note.txt | saltcrypt enc > note.enc")
	case "dec":
		fmt.Println("saltcrypt dec [-v] [<text>]")
		fmt.Println()
		fmt.Println("Decrypts base64 ciphertext (argument or stdin) and prints the")
		fmt.Println("plaintext to stdout. A wrong password is indistinguishable from")
		fmt.Println("corrupted input; both are reported as a decryption failure.")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  -v    Log derivation parameters (salt, IV) to stderr")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  saltcrypt dec 'U2FsdGVkX18...'")
		fmt.Println("  saltcrypt dec < note.enc")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
	}
}
