package main

import (
	"fmt"
	"os"
)

func printShortUsage() {
	fmt.Fprintf(os.Stderr, "NAME\n")
	fmt.Fprintf(os.Stderr, "    %s - Securely overwrite and remove files\n\n", AppName)

	fmt.Fprintf(os.Stderr, "SYNOPSIS\n")
	fmt.Fprintf(os.Stderr, "    %s [OPTIONS] <file1> <file2> ...\n\n", AppName)

	fmt.Fprintf(os.Stderr, "OPTIONS\n")
	fmt.Fprintf(os.Stderr, "    -n, --overwrite-count <n>  Set number of overwrites (default: 3)\n")
	fmt.Fprintf(os.Stderr, "    -r, --recursive            Shred directories and their contents\n")
	fmt.Fprintf(os.Stderr, "    -k, --keep-files           Keep files after overwriting (no removal)\n")
	fmt.Fprintf(os.Stderr, "    -v, --verbose              Enable verbose output for detailed logging\n")
	fmt.Fprintf(os.Stderr, "    -e, --follow-symlinks      Follow symlinks during shredding\n")
	fmt.Fprintf(os.Stderr, "    -s, --secure               Enable secure shredding with randomization (slower)\n")
	fmt.Fprintf(os.Stderr, "    -d, --dry                  Show what would be shredded without actual processing\n")
	fmt.Fprintf(os.Stderr, "    -c, --no-verify            Skip post-shredding verification (faster)\n")
	fmt.Fprintf(os.Stderr, "    -f, --force                Attempt permission elevation when read or write is denied\n")
	fmt.Fprintf(os.Stderr, "    -h, --help                 Show this usage\n")
	fmt.Fprintf(os.Stderr, "    -H, --full-help            Show the full usage\n")
	fmt.Fprintf(os.Stderr, "    -V, --version              Show version\n")
	fmt.Fprintf(os.Stderr, "    -C, --copyright            Show copyright\n")
}

func printFullUsage() {
	printShortUsage()

	fmt.Fprintf(os.Stderr, "\nDESCRIPTION\n")
	fmt.Fprintf(os.Stderr, "    %s is a tool designed to securely overwrite and remove files and directories.\n", AppName)
	fmt.Fprintf(os.Stderr, "    By default, it overwrites the specified files with random data and removes them, ensuring that\n")
	fmt.Fprintf(os.Stderr, "    data is unrecoverable. The tool offers various options for customizing the shredding process.\n")
	fmt.Fprintf(os.Stderr, "    This tool almost conforms to DoD 5220.22-M when the '-s' flag is used without the '-c' flag.\n")
	fmt.Fprintf(os.Stderr, "    This program will exit 2 on this dialogue, 1 on failure, and 0 on success.\n\n")

	fmt.Fprintf(os.Stderr, "DESCRIPTION OF OPTIONS\n")
	fmt.Fprintf(os.Stderr, "    -n <overwrites>\n")
	fmt.Fprintf(os.Stderr, "        Specifies the number of overwriting passes. By default, 3 passes are performed, but you can\n")
	fmt.Fprintf(os.Stderr, "        increase this number for higher security. More passes will make the process slower.\n\n")

	fmt.Fprintf(os.Stderr, "    -r <recursive>\n")
	fmt.Fprintf(os.Stderr, "        Enables recursive mode. If set, the program will shred the contents of directories as well as\n")
	fmt.Fprintf(os.Stderr, "        the files themselves. Without this flag, only files are processed.\n\n")

	fmt.Fprintf(os.Stderr, "    -k <keep files>\n")
	fmt.Fprintf(os.Stderr, "        If set, files will be overwritten with random data, but they will not be deleted. This option\n")
	fmt.Fprintf(os.Stderr, "        is useful if you want to securely wipe a file's contents but retain the file itself.\n\n")

	fmt.Fprintf(os.Stderr, "    -v <verbose>\n")
	fmt.Fprintf(os.Stderr, "        Enables verbose output, printing detailed information about each step of the shredding process.\n\n")

	fmt.Fprintf(os.Stderr, "    -e <follow symlinks>\n")
	fmt.Fprintf(os.Stderr, "        Follow symbolic links and include them in the shredding process. Without this flag, symlinks\n")
	fmt.Fprintf(os.Stderr, "        are ignored.\n\n")

	fmt.Fprintf(os.Stderr, "    -s <secure mode>\n")
	fmt.Fprintf(os.Stderr, "        Enables secure shredding with byte-level randomization, making data recovery significantly\n")
	fmt.Fprintf(os.Stderr, "        more difficult. This mode is slower due to the added security.\n\n")

	fmt.Fprintf(os.Stderr, "    -d <dry run>\n")
	fmt.Fprintf(os.Stderr, "        Simulates the shredding process without performing any actual deletion. Use this to verify\n")
	fmt.Fprintf(os.Stderr, "        which files would be affected before running the program for real.\n\n")

	fmt.Fprintf(os.Stderr, "    -c <no verification>\n")
	fmt.Fprintf(os.Stderr, "        Disables the post-shredding file verification. Normally, the tool verifies that files have\n")
	fmt.Fprintf(os.Stderr, "        been overwritten after shredding, but this step can be skipped for faster operation.\n\n")

	fmt.Fprintf(os.Stderr, "    -f <force>\n")
	fmt.Fprintf(os.Stderr, "        Attempts to widen permissions, clear blocking file attributes and extended attributes when\n")
	fmt.Fprintf(os.Stderr, "        read or write access to a file is denied.\n\n")

	fmt.Fprintf(os.Stderr, "EXAMPLES\n")
	fmt.Fprintf(os.Stderr, "    %s -n 5 -r -v -s file1.txt file2.txt directory1\n", AppName)
	fmt.Fprintf(os.Stderr, "        Overwrites 'file1.txt' and 'file2.txt' with 5 passes, recursively handles 'directory1',\n")
	fmt.Fprintf(os.Stderr, "        and uses secure mode with verbose output.\n\n")

	fmt.Fprintf(os.Stderr, "    %s -d file1.txt file2.txt\n", AppName)
	fmt.Fprintf(os.Stderr, "        Performs a dry run to show what would be shredded without actual deletion.\n")
}

func printCopyright() {
	fmt.Printf("%s  Copyright (C) 2024\n", AppName)
	fmt.Println("This program comes with ABSOLUTELY NO WARRANTY.")
	fmt.Println("This is free software, and you are welcome to redistribute it")
	fmt.Println("under the terms of the GNU General Public License version 3.")
}
