package main

// expandArgs разворачивает связки коротких флагов в отдельные аргументы,
// позволяя числовому аргументу '-n' стоять внутри связки:
// -kvn5sf → -k -v -n 5 -s -f. Длинные опции и позиционные аргументы
// проходят без изменений.
func expandArgs(args []string) []string {
	out := make([]string, 0, len(args))

	terminated := false
	for _, arg := range args {
		if terminated || len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
			if arg == "--" {
				terminated = true
			}
			out = append(out, arg)
			continue
		}

		body := arg[1:]
		for j := 0; j < len(body); j++ {
			c := body[j]

			if c == 'n' {
				// Число может идти сразу за флагом без пробела
				k := j + 1
				for k < len(body) && body[k] >= '0' && body[k] <= '9' {
					k++
				}
				if k > j+1 {
					out = append(out, "-n", body[j+1:k])
					j = k - 1
					continue
				}
				out = append(out, "-n")
				continue
			}

			out = append(out, "-"+string(c))
		}
	}

	return out
}
