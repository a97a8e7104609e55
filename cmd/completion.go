// Package cmd provides CLI utilities for dep-comply
package cmd

import (
	"fmt"
	"strings"
)

// Commands available in dep-comply
var commands = []string{
	"init",
	"export",
	"list",
	"list-ignored",
	"check",
	"sbom",
	"watch",
	"completion",
	"help",
}

// GenerateBashCompletion generates bash completion script
func GenerateBashCompletion() string {
	return fmt.Sprintf(`# bash completion for dep-comply
_dep_comply_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Commands
    opts="%s"

    # Command-specific options
    case "${prev}" in
        init)
            opts="--yes -y --quiet -q --json"
            ;;
        export)
            opts="--quiet -q --json"
            ;;
        check)
            opts="--quiet -q --json"
            ;;
        list|list-ignored)
            opts="--quiet -q --json"
            ;;
        sbom)
            opts="--format --output --quiet -q --json"
            ;;
        --format)
            opts="cyclonedx spdx"
            ;;
        completion)
            opts="bash zsh fish powershell"
            ;;
        watch)
            opts=""
            ;;
    esac

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
}

complete -F _dep_comply_completions dep-comply
`, strings.Join(commands, " "))
}

// GenerateZshCompletion generates zsh completion script
func GenerateZshCompletion() string {
	cmdList := make([]string, len(commands))
	for i, cmd := range commands {
		desc := getCommandDescription(cmd)
		cmdList[i] = fmt.Sprintf("    '%s:%s'", cmd, desc)
	}

	return fmt.Sprintf(`#compdef dep-comply

_dep_comply() {
    local -a commands
    commands=(
%s
    )

    _arguments -C \
        '1: :->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                init)
                    _arguments \
                        '--yes[Skip confirmation]' \
                        '-y[Skip confirmation]' \
                        '--quiet[Minimal output]' \
                        '-q[Minimal output]' \
                        '--json[JSON output]'
                    ;;
                sbom)
                    _arguments \
                        '--format[SBOM format]:format:(cyclonedx spdx)' \
                        '--output[Output file]:file:_files' \
                        '--quiet[Minimal output]' \
                        '-q[Minimal output]' \
                        '--json[JSON output]'
                    ;;
                export|check|list|list-ignored)
                    _arguments \
                        '--quiet[Minimal output]' \
                        '-q[Minimal output]' \
                        '--json[JSON output]'
                    ;;
                completion)
                    _arguments '1:shell:(bash zsh fish powershell)'
                    ;;
            esac
            ;;
    esac
}

_dep_comply "$@"
`, strings.Join(cmdList, "\n"))
}

// GenerateFishCompletion generates fish completion script
func GenerateFishCompletion() string {
	var completions []string

	// Add command completions
	for _, cmd := range commands {
		desc := getCommandDescription(cmd)
		completions = append(completions, fmt.Sprintf("complete -c dep-comply -f -n '__fish_use_subcommand' -a '%s' -d '%s'", cmd, desc))
	}

	// Add flag completions
	completions = append(completions, "# init command flags")
	completions = append(completions, "complete -c dep-comply -n '__fish_seen_subcommand_from init' -l yes -s y -d 'Skip confirmation'")
	completions = append(completions, "complete -c dep-comply -n '__fish_seen_subcommand_from init' -l quiet -s q -d 'Minimal output'")
	completions = append(completions, "complete -c dep-comply -n '__fish_seen_subcommand_from init' -l json -d 'JSON output'")

	completions = append(completions, "# sbom command flags")
	completions = append(completions, "complete -c dep-comply -n '__fish_seen_subcommand_from sbom' -l format -d 'SBOM format' -r -f -a 'cyclonedx spdx'")
	completions = append(completions, "complete -c dep-comply -n '__fish_seen_subcommand_from sbom' -l output -d 'Output file' -r")

	completions = append(completions, "# export/check/list/list-ignored flags")
	completions = append(completions, "complete -c dep-comply -n '__fish_seen_subcommand_from export check list list-ignored' -l quiet -s q -d 'Minimal output'")
	completions = append(completions, "complete -c dep-comply -n '__fish_seen_subcommand_from export check list list-ignored' -l json -d 'JSON output'")

	completions = append(completions, "# completion command shells")
	completions = append(completions, "complete -c dep-comply -n '__fish_seen_subcommand_from completion' -f -a 'bash zsh fish powershell'")

	return strings.Join(completions, "\n")
}

// GeneratePowerShellCompletion generates PowerShell completion script
func GeneratePowerShellCompletion() string {
	cmdArray := make([]string, len(commands))
	for i, cmd := range commands {
		cmdArray[i] = fmt.Sprintf("'%s'", cmd)
	}

	return fmt.Sprintf(`# PowerShell completion for dep-comply
Register-ArgumentCompleter -Native -CommandName dep-comply -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $commands = @(%s)

    $line = $commandAst.ToString()
    $tokens = $line.Split(' ')

    if ($tokens.Count -eq 2) {
        # Complete command
        $commands | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
    }
    elseif ($tokens.Count -gt 2) {
        $subcommand = $tokens[1]

        switch ($subcommand) {
            'init' {
                @('--yes', '-y', '--quiet', '-q', '--json') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
            'sbom' {
                @('--format', '--output', '--quiet', '-q', '--json') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
            { $_ -in 'export','check','list','list-ignored' } {
                @('--quiet', '-q', '--json') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
            'completion' {
                @('bash', 'zsh', 'fish', 'powershell') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
        }
    }
}
`, strings.Join(cmdArray, ", "))
}

// getCommandDescription returns a short description for a command
func getCommandDescription(cmd string) string {
	descriptions := map[string]string{
		"init":         "Create compliance configuration",
		"export":       "Resolve graph and write compliance report",
		"list":         "Print current compliance snapshot",
		"list-ignored": "Print parsed ignore list",
		"check":        "Verify committed report is current",
		"sbom":         "Render snapshot as an SBOM",
		"watch":        "Re-export on graph dump changes",
		"completion":   "Generate shell completion script",
		"help":         "Show help information",
	}

	if desc, ok := descriptions[cmd]; ok {
		return desc
	}
	return ""
}
