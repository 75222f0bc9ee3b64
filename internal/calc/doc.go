/*
Package calc implements an arithmetic expression language: a lexer, a
recursive-descent parser, and a tree-walking interpreter with a variable
environment that persists across evaluations.

Grammar

	assignment --> IDENTIFIER "=" expression
	             | expression ;
	expression --> term ( ( "+" | "-" ) term )* ;
	term       --> power ( ( "*" | "/" ) power )* ;
	power      --> factor ( ( "^" | "**" ) power )? ;
	factor     --> ( "+" | "-" ) factor
	             | NUMBER | IDENTIFIER
	             | "(" expression ")" ;

"power" is right-associative, so 2^3^2 parses as 2^(3^2). The binary rules
for "+", "-", "*" and "/" are left-associative. Assignment is only
recognized at the head of the input, when an identifier is immediately
followed by "=".
*/
package calc
