/* Package main: an Intcode machine

Intcode programs are lists of integers, written with commas between them; the
same list is both the program and the memory that it runs against, so programs
are free to modify themselves as they run.

Execution starts at address 0. The word at the instruction pointer names an
operation in its lowest two decimal digits:

	 1 add   a b c   c = a + b
	 2 mul   a b c   c = a * b
	 3 in    a       a = next input
	 4 out   a       output a
	 5 jnz   a b     if a != 0 jump to b
	 6 jz    a b     if a == 0 jump to b
	 7 lt    a b c   c = a < b ? 1 : 0
	 8 eq    a b c   c = a == b ? 1 : 0
	99 halt          stop

Any higher digits give parameter modes, one digit per parameter, starting with
the hundreds digit for the first parameter. Mode 0 (position) parameters are
addresses to load a value from, while mode 1 (immediate) parameters are the
value itself. Destination parameters, like c above, are always addresses.

After an instruction that does not jump, the instruction pointer advances past
it: by 4 for add, by 2 for in, and so on.

The intcode command loads a program from a file, or from stdin, and runs it;
every output value is printed on its own line:

	intcode -input 8 prog.txt

Output may also be limited to the final value, as diagnostic programs produce:

	intcode -input 5 -last diag.txt

A pair of values may be stored at addresses 1 and 2 (the "noun" and the "verb")
before running, in which case the value left at address 0 is printed; with
-search, the command finds the noun and verb that leave a given value:

	intcode -noun 12 -verb 2 gravity.txt
	intcode -search 19690720 gravity.txt

*/
package main
