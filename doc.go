/*
Package bnfgram reads human-written BNF-like grammar descriptions into an
in-memory grammar representation.

A grammar description has one production rule per line. Left-hand side and
right-hand side are separated by a delimiter (default "->"), alternatives are
separated by '|' and symbols by spaces:

    S   -> a S b | eps
    eps ->

Symbols first seen on a right-hand side are taken to be terminals and are
re-classified as soon as they show up on a left-hand side. Package structure is
as follows:

■ grammar: Package grammar implements the symbol table and the rule store.

■ grammar/scanner: Package scanner splits right-hand sides into symbol tokens.

■ rules: Package rules implements the line-oriented rule parser.

■ cmd/bnfc: A command line tool to load and inspect grammar files.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bnfgram
