package render

func LoginPage(State) string {
	form := `<div class="panel"><h1>Login</h1>` +
		`<form id="login-form" method="post" action="/login">` +
		`<input name="email" type="email" required placeholder="Email">` +
		`<input name="password" type="password" required placeholder="Password">` +
		`<button>Login</button></form>` +
		`<div class="muted">New customer? <a href="/register">Register</a></div></div>`
	pitch := `<div class="panel"><h2>Why shop with us?</h2><ul>` +
		`<li>Fast delivery across Nepal</li>` +
		`<li>Secure checkout options</li>` +
		`<li>Top brands and great deals</li></ul></div>`
	return section("split-2", form+pitch)
}

func RegisterPage(State) string {
	form := `<div class="panel narrow"><h1>Create your account</h1>` +
		`<form id="register-form" method="post" action="/register">` +
		`<input name="name" required placeholder="Full Name">` +
		`<input name="email" type="email" required placeholder="Email">` +
		`<input name="password" type="password" required placeholder="Password">` +
		`<button>Register</button></form>` +
		`<div class="muted">Already have an account? <a href="/login">Login</a></div></div>`
	return section("", form)
}

func SellerRegisterPage(State) string {
	form := `<div class="panel narrow"><h1>Seller Registration</h1>` +
		`<form id="seller-form" method="post" action="/seller-register">` +
		`<input name="store" required placeholder="Store Name">` +
		`<input name="email" type="email" required placeholder="Business Email">` +
		`<input name="phone" required placeholder="Phone">` +
		`<textarea name="about" placeholder="About your store"></textarea>` +
		`<button>Register as Seller</button></form></div>`
	return section("", form)
}
